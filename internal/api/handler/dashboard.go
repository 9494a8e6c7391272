package handler

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/vfg2006/shop-dashboard-api/internal/dashboard"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/shop-dashboard-api/pkg/format"
)

// DashboardPage renderiza o HTML do dashboard
func DashboardPage(loader analytics.SalesLoader, formatter *format.Formatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, ok := buildView(loader, formatter, w, r)
		if !ok {
			return
		}

		templ.Handler(dashboard.Render(view)).ServeHTTP(w, r)
	})
}

// DashboardJSON devolve a mesma view em JSON
func DashboardJSON(loader analytics.SalesLoader, formatter *format.Formatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, ok := buildView(loader, formatter, w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, view)
	})
}

func buildView(loader analytics.SalesLoader, formatter *format.Formatter, w http.ResponseWriter, r *http.Request) (domain.DashboardView, bool) {
	metrics, ok := loadAggregate(loader, w, r)
	if !ok {
		return domain.DashboardView{}, false
	}

	query := r.URL.Query()
	status := domain.FetcherStatus{
		State:  domain.ParseFetchState(query.Get("state")),
		Method: strings.ToUpper(query.Get("method")),
	}

	view := dashboard.Build(metrics, status, lastResultFromQuery(query.Get("product_id")), formatter)
	view.Action.SessionToken = query.Get(domain.SessionTokenParam)

	return view, true
}

// lastResultFromQuery aceita o id numérico ou o GID completo do produto criado
func lastResultFromQuery(productID string) *domain.SampleProductResult {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil
	}

	return &domain.SampleProductResult{Product: &domain.Product{ID: domain.ProductGID(productID)}}
}
