package analytics

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
)

func TestSumGrossSales(t *testing.T) {
	tests := []struct {
		name     string
		orders   []domain.OrderRecord
		expected string
		currency string
	}{
		{
			name:     "sem pedidos",
			orders:   nil,
			expected: "0",
		},
		{
			name:     "um pedido",
			orders:   []domain.OrderRecord{{TotalAmount: "10.50", CurrencyCode: "USD"}},
			expected: "10.5",
			currency: "USD",
		},
		{
			name: "soma exata de decimais",
			orders: []domain.OrderRecord{
				{TotalAmount: "0.10", CurrencyCode: "USD"},
				{TotalAmount: "0.20", CurrencyCode: "USD"},
				{TotalAmount: "1234.05", CurrencyCode: "USD"},
			},
			expected: "1234.35",
			currency: "USD",
		},
		{
			name: "moedas diferentes somadas sem conversão",
			orders: []domain.OrderRecord{
				{TotalAmount: "10", CurrencyCode: "USD"},
				{TotalAmount: "5", CurrencyCode: "CAD"},
			},
			expected: "15",
			currency: "USD",
		},
		{
			name: "primeira moeda não vazia",
			orders: []domain.OrderRecord{
				{TotalAmount: "1"},
				{TotalAmount: "2", CurrencyCode: "BRL"},
			},
			expected: "3",
			currency: "BRL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SumGrossSales(tt.orders)

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(result.GrossSales), "got %s", result.GrossSales)
			assert.Equal(t, tt.currency, result.CurrencyCode)
		})
	}
}

func TestSumGrossSales_MalformedAmount(t *testing.T) {
	orders := []domain.OrderRecord{
		{TotalAmount: "10.00"},
		{TotalAmount: "abc"},
	}

	_, err := SumGrossSales(orders)

	require.ErrorIs(t, err, ErrMalformedAmount)
	assert.Contains(t, err.Error(), `pedido 1 com valor "abc"`)
}

func TestSumGrossSales_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	orders := make([]domain.OrderRecord, 0, 200)
	expected := decimal.Zero
	for i := 0; i < 200; i++ {
		amount := decimal.New(rng.Int63n(1_000_000), -2)
		expected = expected.Add(amount)
		orders = append(orders, domain.OrderRecord{TotalAmount: amount.StringFixed(2)})
	}

	first, err := SumGrossSales(orders)
	require.NoError(t, err)

	rng.Shuffle(len(orders), func(i, j int) { orders[i], orders[j] = orders[j], orders[i] })

	second, err := SumGrossSales(orders)
	require.NoError(t, err)

	assert.True(t, expected.Equal(first.GrossSales))
	assert.True(t, first.GrossSales.Equal(second.GrossSales))
}
