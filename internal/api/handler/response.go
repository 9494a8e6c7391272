package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("http: erro ao codificar resposta")
	}
}

// sessionOrFail escreve 401 quando o middleware de sessão não rodou
func sessionOrFail(w http.ResponseWriter, r *http.Request) (*domain.AdminSession, bool) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão da loja ausente", nil)
		return nil, false
	}
	return session, true
}
