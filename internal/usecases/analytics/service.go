package analytics

import (
	"context"
	"fmt"

	"github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/shop-dashboard-api/internal/config"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/pkg/log"
	"github.com/vfg2006/shop-dashboard-api/pkg/metrics"
)

// SalesLoader é o loader do dashboard
type SalesLoader interface {
	// LoadSalesTotal busca os pedidos da loja e devolve a soma das vendas brutas
	LoadSalesTotal(ctx context.Context, session *domain.AdminSession) (*domain.SalesTotal, error)
}

type Service struct {
	cfg            *config.Config
	shopifyService shopify.ShopifyIntegrator
	metrics        *metrics.Metrics
}

func NewService(cfg *config.Config, shopifyService shopify.ShopifyIntegrator, m *metrics.Metrics) *Service {
	return &Service{
		cfg:            cfg,
		shopifyService: shopifyService,
		metrics:        m,
	}
}

func (s *Service) LoadSalesTotal(ctx context.Context, session *domain.AdminSession) (*domain.SalesTotal, error) {
	if session == nil {
		return nil, ErrMissingSession
	}

	logger := log.ForContext(ctx).WithField("shop", session.Shop)

	orders, err := s.shopifyService.GetOrderRecords(ctx, session, s.cfg.Dashboard.OrdersLimit)
	if err != nil {
		s.metrics.SalesLoads.WithLabelValues(metrics.ResultFailure).Inc()
		logger.WithError(err).Error("analytics: falha ao buscar pedidos")
		return nil, fmt.Errorf("%w: %w", ErrFetchOrders, err)
	}

	aggregate, err := SumGrossSales(orders)
	if err != nil {
		s.metrics.SalesLoads.WithLabelValues(metrics.ResultFailure).Inc()
		logger.WithError(err).Error("analytics: falha ao somar vendas")
		return nil, err
	}

	s.metrics.SalesLoads.WithLabelValues(metrics.ResultSuccess).Inc()
	s.metrics.OrdersLoaded.Add(float64(len(orders)))
	s.metrics.GrossSales.WithLabelValues(session.Shop).Set(aggregate.GrossSales.InexactFloat64())

	logger.WithFields(log.Fields{
		"orders_count": len(orders),
		"shop_total":   aggregate.GrossSales.String(),
	}).Debug("analytics: total de vendas calculado")

	return &domain.SalesTotal{
		TotalSales:   aggregate.GrossSales,
		CurrencyCode: aggregate.CurrencyCode,
	}, nil
}
