package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
)

// SumGrossSales soma o valor total de todos os pedidos, sem conversão de moeda e sem arredondamento
func SumGrossSales(orders []domain.OrderRecord) (domain.AggregateMetrics, error) {
	total := decimal.Zero
	currency := ""
	mixed := false

	for i, order := range orders {
		amount, err := decimal.NewFromString(order.TotalAmount)
		if err != nil {
			return domain.AggregateMetrics{}, fmt.Errorf("%w: pedido %d com valor %q", ErrMalformedAmount, i, order.TotalAmount)
		}

		total = total.Add(amount)

		switch {
		case order.CurrencyCode == "":
		case currency == "":
			currency = order.CurrencyCode
		case currency != order.CurrencyCode:
			mixed = true
		}
	}

	if mixed {
		logrus.WithFields(logrus.Fields{
			"currency_code": currency,
			"orders_count":  len(orders),
		}).Warn("analytics: pedidos com moedas diferentes somados sem conversão")
	}

	return domain.AggregateMetrics{
		GrossSales:   total,
		CurrencyCode: currency,
	}, nil
}
