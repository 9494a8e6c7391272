package dashboard

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/pkg/format"
)

func TestBuild(t *testing.T) {
	metrics := domain.AggregateMetrics{GrossSales: decimal.RequireFromString("153800.00"), CurrencyCode: "USD"}

	view := Build(metrics, domain.FetcherStatus{State: domain.FetchStateIdle}, nil, format.Default)

	assert.Equal(t, "Analytics", view.Title)
	assert.Equal(t, "Generate a product", view.Action.Label)
	assert.False(t, view.Action.Loading)
	assert.Equal(t, []domain.DisplayMetric{
		{Label: "Gross sales", Value: "$153.8K"},
		{Label: "Returning customer rate", Value: "0%"},
		{Label: "Orders fulfilled", Value: "0"},
		{Label: "Orders", Value: "0"},
	}, view.Metrics)
	assert.Equal(t, "Total sales breakdown", view.BreakdownTitle)
	assert.Equal(t, []domain.DisplayMetric{
		{Label: "Gross sales", Value: "$153.8K"},
		{Label: "Discounts", Value: "$0.00"},
		{Label: "Returns", Value: "$0.00"},
		{Label: "Net sales", Value: "$0.00"},
		{Label: "Shipping charges", Value: "$0.00"},
		{Label: "Return fees", Value: "$0.00"},
		{Label: "Taxes", Value: "$0.00"},
		{Label: "Total sales", Value: "$153.8K"},
	}, view.Breakdown)
	assert.Empty(t, view.Toast)
	assert.Empty(t, view.CreatedProductID)
}

func TestBuild_NilFormatterUsesDefault(t *testing.T) {
	view := Build(domain.AggregateMetrics{GrossSales: decimal.NewFromInt(999)}, domain.FetcherStatus{}, nil, nil)

	assert.Equal(t, "$999.00", view.Metrics[0].Value)
}

func TestBuild_CustomSymbol(t *testing.T) {
	view := Build(domain.AggregateMetrics{GrossSales: decimal.NewFromInt(1500)}, domain.FetcherStatus{}, nil, format.New("R$", "en-US"))

	assert.Equal(t, "R$1.5K", view.Metrics[0].Value)
	assert.Equal(t, "R$0.00", view.Breakdown[1].Value)
}

func TestIsLoading(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.FetcherStatus
		expected bool
	}{
		{"idle", domain.FetcherStatus{State: domain.FetchStateIdle, Method: http.MethodPost}, false},
		{"loading post", domain.FetcherStatus{State: domain.FetchStateLoading, Method: http.MethodPost}, true},
		{"submitting post", domain.FetcherStatus{State: domain.FetchStateSubmitting, Method: http.MethodPost}, true},
		{"submitting get", domain.FetcherStatus{State: domain.FetchStateSubmitting, Method: http.MethodGet}, false},
		{"loaded post", domain.FetcherStatus{State: domain.FetchStateLoaded, Method: http.MethodPost}, false},
		{"sem método", domain.FetcherStatus{State: domain.FetchStateLoading}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLoading(tt.status))
		})
	}
}

func TestBuild_Toast(t *testing.T) {
	result := &domain.SampleProductResult{
		Product: &domain.Product{ID: "gid://shopify/Product/42"},
	}

	view := Build(domain.AggregateMetrics{}, domain.FetcherStatus{State: domain.FetchStateLoaded, Method: http.MethodPost}, result, format.Default)

	assert.Equal(t, "Product created", view.Toast)
	assert.Equal(t, "42", view.CreatedProductID)
	assert.False(t, view.Action.Loading)
}

func TestRender(t *testing.T) {
	view := Build(domain.AggregateMetrics{GrossSales: decimal.NewFromInt(2750000)}, domain.FetcherStatus{State: domain.FetchStateSubmitting, Method: http.MethodPost},
		&domain.SampleProductResult{Product: &domain.Product{ID: "gid://shopify/Product/7"}}, format.Default)

	var buf bytes.Buffer
	require.NoError(t, Render(view).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<h1>Analytics</h1>")
	assert.Contains(t, html, `action="/app/sample-products"`)
	assert.Contains(t, html, `aria-busy="true"`)
	assert.Contains(t, html, "<h3>$2.7M</h3>")
	assert.Contains(t, html, "<h2>Total sales breakdown</h2>")
	assert.Contains(t, html, "<td>Taxes</td><td>$0.00</td>")
	assert.Contains(t, html, `data-product-id="7"`)
	assert.Contains(t, html, "Product created")
}

func TestRender_EscapesText(t *testing.T) {
	view := domain.DashboardView{
		Title:   "<script>alert(1)</script>",
		Metrics: []domain.DisplayMetric{{Label: "a&b", Value: "<b>"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(view).Render(context.Background(), &buf))
	html := buf.String()

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a&amp;b")
	assert.NotContains(t, html, `class="toast"`)
}

func TestRender_SessionTokenInForm(t *testing.T) {
	view := Build(domain.AggregateMetrics{}, domain.FetcherStatus{}, nil, format.Default)

	var buf bytes.Buffer
	require.NoError(t, Render(view).Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), `name="id_token"`)

	view.Action.SessionToken = `tok"><script>`
	buf.Reset()
	require.NoError(t, Render(view).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), `<input type="hidden" name="id_token" value="tok&#34;&gt;&lt;script&gt;">`)
}
