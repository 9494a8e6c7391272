package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/shop-dashboard-api/internal/config"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/shop-dashboard-api/pkg/log"
)

const sessionTokenLeeway = 5 * time.Second

// SessionClaims são as claims do session token do app embutido no admin
type SessionClaims struct {
	Dest string `json:"dest"`
	SID  string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// ShopSession valida o session token e coloca a AdminSession no contexto.
// Sem SHOPIFY_API_SECRET a loja configurada é usada diretamente (ONLY LOCAL).
func ShopSession(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Shopify.ShopDomain == "" || cfg.Shopify.AccessToken == "" {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Loja não configurada", nil)
				return
			}

			session := &domain.AdminSession{
				Shop:        cfg.Shopify.ShopDomain,
				AccessToken: cfg.Shopify.AccessToken,
				APIVersion:  cfg.Shopify.APIVersion,
			}

			if cfg.Shopify.APISecret != "" {
				claims, code, err := verifySessionToken(r, cfg)
				if err != nil {
					log.ForContext(r.Context()).WithError(err).Warn("session: token de sessão rejeitado")
					apiErrors.WriteError(w, code, "Token de sessão inválido", nil)
					return
				}

				shop, err := shopFromDest(claims.Dest)
				if err != nil {
					apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de sessão inválido", nil)
					return
				}

				if shop != cfg.Shopify.ShopDomain {
					log.ForContext(r.Context()).WithField("shop", shop).Warn("session: loja do token diferente da configurada")
					apiErrors.WriteError(w, apiErrors.ErrShopMismatch, "Loja não autorizada", nil)
					return
				}

				session.UserID = claims.Subject
			}

			ctx := domain.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionToken lê o Bearer do header; sem header, aceita id_token da query ou do formulário
func sessionToken(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", errors.New("header Authorization sem Bearer")
		}
		return tokenString, nil
	}

	if tokenString := r.FormValue(domain.SessionTokenParam); tokenString != "" {
		return tokenString, nil
	}

	return "", errors.New("session token ausente")
}

func verifySessionToken(r *http.Request, cfg *config.Config) (*SessionClaims, string, error) {
	tokenString, err := sessionToken(r)
	if err != nil {
		return nil, apiErrors.ErrInvalidToken, err
	}

	claims := &SessionClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Shopify.APISecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(cfg.Shopify.APIKey),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(sessionTokenLeeway),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apiErrors.ErrExpiredToken, err
		}
		return nil, apiErrors.ErrInvalidToken, err
	}

	return claims, "", nil
}

// shopFromDest extrai o domínio da loja de dest, ex: https://loja.myshopify.com -> loja.myshopify.com
func shopFromDest(dest string) (string, error) {
	u, err := url.Parse(dest)
	if err != nil {
		return "", err
	}
	if u.Scheme != "https" || u.Host == "" {
		return "", errors.New("dest inválido")
	}
	return u.Host, nil
}
