// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "github.com/shopspring/decimal"

// OrderRecord é um pedido como entregue pela plataforma, com o valor ainda serializado
type OrderRecord struct {
	TotalAmount  string `json:"totalAmount"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

// AggregateMetrics é recalculado a cada carregamento do dashboard
type AggregateMetrics struct {
	GrossSales   decimal.Decimal `json:"grossSales"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
}

// SalesTotal é a resposta do loader
type SalesTotal struct {
	TotalSales   decimal.Decimal `json:"totalSales"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
}
