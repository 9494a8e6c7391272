package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/shop-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/shop-dashboard-api/internal/config"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/pkg/metrics"
)

// SampleReconcileConfig representa a configuração do agendador de reconciliação de preços
type SampleReconcileConfig struct {
	CronSchedule string
	MaxAttempts  int
	SyncEnabled  bool
}

// ReconcileSummary resume uma execução da reconciliação
type ReconcileSummary struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// SampleReconcileService reaplica o preço de produtos de exemplo que ficaram com status pending_price
type SampleReconcileService struct {
	scheduler           *gocron.Scheduler
	config              SampleReconcileConfig
	appConfig           *config.Config
	sampleRepo          repository.SampleGenerationRepository
	shopifyService      shopify.ShopifyIntegrator
	metrics             *metrics.Metrics
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         ReconcileSummary
	runCtx              context.Context
	now                 func() time.Time
}

func NewSampleReconcileService(
	sampleRepo repository.SampleGenerationRepository,
	shopifyService shopify.ShopifyIntegrator,
	m *metrics.Metrics,
	appConfig *config.Config,
) *SampleReconcileService {
	reconcileConfig := SampleReconcileConfig{
		CronSchedule: appConfig.SampleReconcile.CronSchedule,
		MaxAttempts:  appConfig.SampleReconcile.MaxAttempts,
		SyncEnabled:  appConfig.SampleReconcile.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reconcileConfig.CronSchedule,
		"max_attempts":  reconcileConfig.MaxAttempts,
		"sync_enabled":  reconcileConfig.SyncEnabled,
	}).Info("scheduler: configuração da reconciliação de preços carregada")

	return &SampleReconcileService{
		scheduler:      gocron.NewScheduler(time.UTC),
		config:         reconcileConfig,
		appConfig:      appConfig,
		sampleRepo:     sampleRepo,
		shopifyService: shopifyService,
		metrics:        m,
		runCtx:         context.Background(),
		now:            time.Now,
	}
}

// Start inicia o agendador
func (s *SampleReconcileService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.runCtx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.Info("scheduler: reconciliação de preços desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando reconciliação de preços")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runReconcile(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de preços: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: parando reconciliação de preços")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a reconciliação fora do cron, com o contexto recebido em Start
func (s *SampleReconcileService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: reconciliação já em andamento, ignorando solicitação manual")
		return
	}
	ctx := s.runCtx
	s.syncMutex.Unlock()

	logrus.Info("scheduler: iniciando reconciliação manual")
	go s.runReconcile(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *SampleReconcileService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_attempts":      s.config.MaxAttempts,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
	}
}

func (s *SampleReconcileService) runReconcile(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: reconciliação já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	summary, err := s.reconcile(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	if err == nil {
		s.lastSummary = summary
		s.lastSyncCompletedAt = s.now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("scheduler: falha na reconciliação de preços")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"pending":   summary.Pending,
		"completed": summary.Completed,
		"failed":    summary.Failed,
		"skipped":   summary.Skipped,
	}).Info("scheduler: reconciliação de preços concluída")
}

// reconcile processa as gerações pendentes em sequência, uma chamada de atualização por produto
func (s *SampleReconcileService) reconcile(ctx context.Context) (ReconcileSummary, error) {
	var summary ReconcileSummary

	pending, err := s.sampleRepo.ListPending(ctx, s.config.MaxAttempts)
	if err != nil {
		return summary, fmt.Errorf("erro ao listar gerações pendentes: %w", err)
	}

	summary.Pending = len(pending)
	session := s.offlineSession()

	for _, generation := range pending {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		if generation.Shop != session.Shop || generation.ProductID == nil || generation.VariantID == nil {
			summary.Skipped++
			logrus.WithFields(logrus.Fields{
				"id":   generation.ID,
				"shop": generation.Shop,
			}).Warn("scheduler: geração pendente sem sessão disponível, ignorando")
			continue
		}

		_, err := s.shopifyService.UpdateVariantPrices(ctx, session, *generation.ProductID, []domain.VariantPrice{
			{ID: *generation.VariantID, Price: generation.Price},
		})

		generation.Attempts++
		generation.UpdatedAt = s.now()

		if err != nil {
			msg := err.Error()
			generation.LastError = &msg
			if generation.Attempts >= s.config.MaxAttempts {
				generation.Status = domain.SampleGenerationFailed
			}
			summary.Failed++
			s.metrics.ReconciledItems.WithLabelValues(metrics.ResultFailure).Inc()

			logrus.WithFields(logrus.Fields{
				"id":              generation.ID,
				"shop_product_id": *generation.ProductID,
				"attempts":        generation.Attempts,
				"error":           msg,
			}).Warn("scheduler: falha ao reaplicar preço")
		} else {
			generation.Status = domain.SampleGenerationCompleted
			generation.LastError = nil
			summary.Completed++
			s.metrics.ReconciledItems.WithLabelValues(metrics.ResultSuccess).Inc()
		}

		if err := s.sampleRepo.Save(ctx, generation); err != nil {
			logrus.WithError(err).WithField("id", generation.ID).Error("scheduler: falha ao salvar geração reconciliada")
		}
	}

	return summary, nil
}

// offlineSession usa o token de acesso configurado, o único disponível fora de uma requisição
func (s *SampleReconcileService) offlineSession() *domain.AdminSession {
	return &domain.AdminSession{
		Shop:        s.appConfig.Shopify.ShopDomain,
		AccessToken: s.appConfig.Shopify.AccessToken,
		APIVersion:  s.appConfig.Shopify.APIVersion,
	}
}
