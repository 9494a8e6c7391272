package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	shopifymocks "github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify/mocks"
	"github.com/vfg2006/shop-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shop-dashboard-api/internal/config"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func reconcileConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Shopify.ShopDomain = "loja-teste.myshopify.com"
	cfg.Shopify.AccessToken = "shpat_teste"
	cfg.Shopify.APIVersion = "2025-01"
	cfg.SampleReconcile.CronSchedule = "*/15 * * * *"
	cfg.SampleReconcile.MaxAttempts = 3
	return cfg
}

func pendingGeneration(id string, attempts int) *domain.SampleGeneration {
	return &domain.SampleGeneration{
		ID:        id,
		Shop:      "loja-teste.myshopify.com",
		Title:     "Red Snowboard",
		ProductID: stringPtr("gid://shopify/Product/" + id),
		VariantID: stringPtr("gid://shopify/ProductVariant/" + id),
		Price:     "100.00",
		Status:    domain.SampleGenerationPendingPrice,
		Attempts:  attempts,
	}
}

func TestSampleReconcileService_reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSampleGenerationRepository(ctrl)
	mockShopify := shopifymocks.NewMockShopifyIntegrator(ctrl)
	m := metrics.New()

	service := NewSampleReconcileService(mockRepo, mockShopify, m, reconcileConfig())
	fixedNow := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixedNow }

	ok := pendingGeneration("1", 0)
	retry := pendingGeneration("2", 0)
	exhausted := pendingGeneration("3", 2)
	otherShop := pendingGeneration("4", 0)
	otherShop.Shop = "outra-loja.myshopify.com"

	mockRepo.EXPECT().
		ListPending(gomock.Any(), 3).
		Return([]*domain.SampleGeneration{ok, retry, exhausted, otherShop}, nil)

	mockShopify.EXPECT().
		UpdateVariantPrices(gomock.Any(), gomock.Any(), "gid://shopify/Product/1", []domain.VariantPrice{
			{ID: "gid://shopify/ProductVariant/1", Price: "100.00"},
		}).
		Return([]domain.Variant{{ID: "gid://shopify/ProductVariant/1", Price: "100.00"}}, nil)

	mockShopify.EXPECT().
		UpdateVariantPrices(gomock.Any(), gomock.Any(), "gid://shopify/Product/2", gomock.Any()).
		Return(nil, errors.New("throttled"))

	mockShopify.EXPECT().
		UpdateVariantPrices(gomock.Any(), gomock.Any(), "gid://shopify/Product/3", gomock.Any()).
		Return(nil, errors.New("throttled"))

	mockRepo.EXPECT().Save(gomock.Any(), ok).Return(nil)
	mockRepo.EXPECT().Save(gomock.Any(), retry).Return(nil)
	mockRepo.EXPECT().Save(gomock.Any(), exhausted).Return(errors.New("connection refused"))

	summary, err := service.reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ReconcileSummary{Pending: 4, Completed: 1, Failed: 2, Skipped: 1}, summary)

	assert.Equal(t, domain.SampleGenerationCompleted, ok.Status)
	assert.Equal(t, 1, ok.Attempts)
	assert.Nil(t, ok.LastError)
	assert.Equal(t, fixedNow, ok.UpdatedAt)

	assert.Equal(t, domain.SampleGenerationPendingPrice, retry.Status)
	assert.Equal(t, 1, retry.Attempts)
	require.NotNil(t, retry.LastError)
	assert.Equal(t, "throttled", *retry.LastError)

	assert.Equal(t, domain.SampleGenerationFailed, exhausted.Status)
	assert.Equal(t, 3, exhausted.Attempts)

	assert.Equal(t, 0, otherShop.Attempts)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReconciledItems.WithLabelValues(metrics.ResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReconciledItems.WithLabelValues(metrics.ResultFailure)))
}

func TestSampleReconcileService_reconcile_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSampleGenerationRepository(ctrl)
	mockShopify := shopifymocks.NewMockShopifyIntegrator(ctrl)

	service := NewSampleReconcileService(mockRepo, mockShopify, metrics.New(), reconcileConfig())

	mockRepo.EXPECT().
		ListPending(gomock.Any(), 3).
		Return(nil, errors.New("connection refused"))

	_, err := service.reconcile(context.Background())

	assert.ErrorContains(t, err, "erro ao listar gerações pendentes")
}

func TestSampleReconcileService_runReconcile_UpdatesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSampleGenerationRepository(ctrl)
	mockShopify := shopifymocks.NewMockShopifyIntegrator(ctrl)

	service := NewSampleReconcileService(mockRepo, mockShopify, metrics.New(), reconcileConfig())

	mockRepo.EXPECT().
		ListPending(gomock.Any(), 3).
		Return([]*domain.SampleGeneration{}, nil)

	service.runReconcile(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, 3, status["sync_max_attempts"])
	assert.Equal(t, ReconcileSummary{}, status["last_summary"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSampleReconcileService_Start_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewSampleReconcileService(
		mocks.NewMockSampleGenerationRepository(ctrl),
		shopifymocks.NewMockShopifyIntegrator(ctrl),
		metrics.New(),
		reconcileConfig(),
	)

	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestSampleReconcileService_Start_InvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := reconcileConfig()
	cfg.SampleReconcile.Enabled = true
	cfg.SampleReconcile.CronSchedule = "not a cron"

	service := NewSampleReconcileService(
		mocks.NewMockSampleGenerationRepository(ctrl),
		shopifymocks.NewMockShopifyIntegrator(ctrl),
		metrics.New(),
		cfg,
	)

	err := service.Start(context.Background())

	assert.Error(t, err)
}

func TestSampleReconcileService_TriggerManualSync_UsesStartContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSampleGenerationRepository(ctrl)

	service := NewSampleReconcileService(mockRepo, shopifymocks.NewMockShopifyIntegrator(ctrl), metrics.New(), reconcileConfig())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, service.Start(ctx))
	cancel()

	received := make(chan context.Context, 1)
	mockRepo.EXPECT().
		ListPending(gomock.Any(), 3).
		DoAndReturn(func(listCtx context.Context, _ int) ([]*domain.SampleGeneration, error) {
			received <- listCtx
			return nil, listCtx.Err()
		})

	service.TriggerManualSync()

	select {
	case listCtx := <-received:
		assert.ErrorIs(t, listCtx.Err(), context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("reconciliação manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}
