package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/internal/usecases/sampling"
	"github.com/vfg2006/shop-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/shop-dashboard-api/pkg/log"
)

const dashboardPath = "/app"

// GenerateSampleProduct é a action: corpo vazio, responde { product, variant }.
// Um POST do formulário do dashboard volta para /app com o toast via 303.
func GenerateSampleProduct(generator sampling.SampleGenerator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrFail(w, r)
		if !ok {
			return
		}

		result, err := generator.GenerateSampleProduct(r.Context(), session)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("http: erro ao gerar produto de exemplo")

			var sampleErr *sampling.SampleError
			if errors.As(err, &sampleErr) {
				var details map[string]string
				if sampleErr.ProductID != "" {
					details = map[string]string{"productId": sampleErr.ProductID}
				}
				apiErrors.WriteError(w, sampleErr.Code, sampleErr.Error(), details)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar produto de exemplo", nil)
			return
		}

		if wantsHTML(r) {
			http.Redirect(w, r, dashboardLocation(r, result), http.StatusSeeOther)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// wantsHTML identifica a submissão do formulário pelo navegador
func wantsHTML(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") || strings.HasPrefix(contentType, "multipart/form-data") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// dashboardLocation monta /app?state=loaded&product_id=<id>, repassando o session token do formulário
func dashboardLocation(r *http.Request, result *domain.SampleProductResult) string {
	query := url.Values{}
	query.Set("state", string(domain.FetchStateLoaded))

	if result != nil && result.Product != nil && result.Product.ID != "" {
		query.Set("product_id", domain.ProductNumericID(result.Product.ID))
	}

	if token := r.FormValue(domain.SessionTokenParam); token != "" {
		query.Set(domain.SessionTokenParam, token)
	}

	return dashboardPath + "?" + query.Encode()
}
