// Package dashboard monta e renderiza a página de analytics a partir do agregado de vendas
package dashboard

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/pkg/format"
)

const (
	Title          = "Analytics"
	ActionLabel    = "Generate a product"
	BreakdownTitle = "Total sales breakdown"
	ProductToast   = "Product created"
)

// Build é uma função pura: mesmo agregado e mesmo status produzem a mesma view
func Build(metrics domain.AggregateMetrics, status domain.FetcherStatus, lastResult *domain.SampleProductResult, f *format.Formatter) domain.DashboardView {
	if f == nil {
		f = format.Default
	}

	gross := f.FormatNumber(metrics.GrossSales)
	zero := f.Currency(decimal.Zero)

	view := domain.DashboardView{
		Title: Title,
		Action: domain.DashboardAction{
			Label:   ActionLabel,
			Loading: IsLoading(status),
		},
		Metrics: []domain.DisplayMetric{
			{Label: "Gross sales", Value: gross},
			{Label: "Returning customer rate", Value: "0%"},
			{Label: "Orders fulfilled", Value: "0"},
			{Label: "Orders", Value: "0"},
		},
		BreakdownTitle: BreakdownTitle,
		Breakdown: []domain.DisplayMetric{
			{Label: "Gross sales", Value: gross},
			{Label: "Discounts", Value: zero},
			{Label: "Returns", Value: zero},
			{Label: "Net sales", Value: zero},
			{Label: "Shipping charges", Value: zero},
			{Label: "Return fees", Value: zero},
			{Label: "Taxes", Value: zero},
			{Label: "Total sales", Value: gross},
		},
	}

	if lastResult != nil && lastResult.Product != nil && lastResult.Product.ID != "" {
		view.CreatedProductID = domain.ProductNumericID(lastResult.Product.ID)
		view.Toast = ProductToast
	}

	return view
}

// IsLoading indica o spinner do botão: só durante uma submissão POST em andamento
func IsLoading(status domain.FetcherStatus) bool {
	inFlight := status.State == domain.FetchStateLoading || status.State == domain.FetchStateSubmitting
	return inFlight && status.Method == http.MethodPost
}
