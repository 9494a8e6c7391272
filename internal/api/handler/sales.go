package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/shop-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/shop-dashboard-api/pkg/log"
)

// LoadSales é o loader: devolve { totalSales, currencyCode }
func LoadSales(loader analytics.SalesLoader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionOrFail(w, r)
		if !ok {
			return
		}

		total, err := loader.LoadSalesTotal(r.Context(), session)
		if err != nil {
			writeSalesError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, total)
	})
}

func loadAggregate(loader analytics.SalesLoader, w http.ResponseWriter, r *http.Request) (domain.AggregateMetrics, bool) {
	session, ok := sessionOrFail(w, r)
	if !ok {
		return domain.AggregateMetrics{}, false
	}

	total, err := loader.LoadSalesTotal(r.Context(), session)
	if err != nil {
		writeSalesError(w, r, err)
		return domain.AggregateMetrics{}, false
	}

	return domain.AggregateMetrics{
		GrossSales:   total.TotalSales,
		CurrencyCode: total.CurrencyCode,
	}, true
}

func writeSalesError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("http: erro ao carregar vendas")

	switch {
	case errors.Is(err, analytics.ErrMalformedAmount):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Valor de pedido inválido retornado pela plataforma", nil)
	case errors.Is(err, analytics.ErrFetchOrders):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamFailure, "Erro ao buscar pedidos na plataforma", nil)
	case errors.Is(err, analytics.ErrMissingSession):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão da loja ausente", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao carregar vendas", nil)
	}
}
