package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	shopifymocks "github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify/mocks"
	"github.com/vfg2006/shop-dashboard-api/internal/config"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *shopifymocks.MockShopifyIntegrator, *metrics.Metrics) {
	ctrl := gomock.NewController(t)
	mockShopify := shopifymocks.NewMockShopifyIntegrator(ctrl)
	m := metrics.New()

	cfg := &config.Config{}
	cfg.Dashboard.OrdersLimit = 100

	return NewService(cfg, mockShopify, m), mockShopify, m
}

func TestService_LoadSalesTotal(t *testing.T) {
	service, mockShopify, m := newTestService(t)
	session := &domain.AdminSession{Shop: "loja-teste.myshopify.com", AccessToken: "shpat_teste"}

	mockShopify.EXPECT().
		GetOrderRecords(gomock.Any(), session, 100).
		Return([]domain.OrderRecord{
			{TotalAmount: "100.25", CurrencyCode: "USD"},
			{TotalAmount: "49.75", CurrencyCode: "USD"},
		}, nil)

	total, err := service.LoadSalesTotal(context.Background(), session)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(total.TotalSales))
	assert.Equal(t, "USD", total.CurrencyCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SalesLoads.WithLabelValues(metrics.ResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrdersLoaded))
	assert.Equal(t, 150.0, testutil.ToFloat64(m.GrossSales.WithLabelValues("loja-teste.myshopify.com")))
}

func TestService_LoadSalesTotal_UpstreamError(t *testing.T) {
	service, mockShopify, m := newTestService(t)
	session := &domain.AdminSession{Shop: "loja-teste.myshopify.com", AccessToken: "shpat_teste"}
	upstream := errors.New("connection refused")

	mockShopify.EXPECT().
		GetOrderRecords(gomock.Any(), session, 100).
		Return(nil, upstream)

	total, err := service.LoadSalesTotal(context.Background(), session)

	assert.Nil(t, total)
	assert.ErrorIs(t, err, ErrFetchOrders)
	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SalesLoads.WithLabelValues(metrics.ResultFailure)))
}

func TestService_LoadSalesTotal_MalformedAmount(t *testing.T) {
	service, mockShopify, _ := newTestService(t)
	session := &domain.AdminSession{Shop: "loja-teste.myshopify.com", AccessToken: "shpat_teste"}

	mockShopify.EXPECT().
		GetOrderRecords(gomock.Any(), session, 100).
		Return([]domain.OrderRecord{{TotalAmount: "1,00"}}, nil)

	_, err := service.LoadSalesTotal(context.Background(), session)

	assert.ErrorIs(t, err, ErrMalformedAmount)
}

func TestService_LoadSalesTotal_NilSession(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.LoadSalesTotal(context.Background(), nil)

	assert.ErrorIs(t, err, ErrMissingSession)
}
