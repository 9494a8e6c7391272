package sampling

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/shop-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/shop-dashboard-api/internal/config"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
	"github.com/vfg2006/shop-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/shop-dashboard-api/pkg/log"
	"github.com/vfg2006/shop-dashboard-api/pkg/metrics"
	"github.com/vfg2006/shop-dashboard-api/pkg/utils"
)

// SampleGenerator é a action do dashboard
type SampleGenerator interface {
	// GenerateSampleProduct cria um produto com título aleatório e fixa o preço da primeira variante
	GenerateSampleProduct(ctx context.Context, session *domain.AdminSession) (*domain.SampleProductResult, error)
}

type Service struct {
	cfg            *config.Config
	shopifyService shopify.ShopifyIntegrator
	repository     repository.SampleGenerationRepository
	metrics        *metrics.Metrics
	picker         *Picker
	now            func() time.Time
}

// NewService cria o serviço; repo pode ser nil quando o banco está desabilitado e rng nil usa uma semente do relógio
func NewService(
	cfg *config.Config,
	shopifyService shopify.ShopifyIntegrator,
	repo repository.SampleGenerationRepository,
	m *metrics.Metrics,
	rng *rand.Rand,
) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Service{
		cfg:            cfg,
		shopifyService: shopifyService,
		repository:     repo,
		metrics:        m,
		picker:         NewPicker(cfg.Sample.Palette, cfg.Sample.TitleSuffix, rng),
		now:            time.Now,
	}
}

func (s *Service) GenerateSampleProduct(ctx context.Context, session *domain.AdminSession) (*domain.SampleProductResult, error) {
	if session == nil {
		return nil, NewSampleError(ErrMissingSession, apiErrors.ErrInvalidToken, "", "")
	}

	logger := log.ForContext(ctx).WithField("shop", session.Shop)

	title := s.picker.Title()
	audit := s.newAudit(session.Shop, title)

	product, err := s.shopifyService.CreateProduct(ctx, session, title)
	if err != nil {
		s.metrics.SampleProducts.WithLabelValues(metrics.ResultFailure).Inc()
		logger.WithError(err).Error("sampling: falha ao criar produto")
		s.record(ctx, audit, domain.SampleGenerationFailed, err)
		return nil, NewSampleError(ErrProductCreateFailed, apiErrors.ErrUpstreamFailure, "", err.Error())
	}

	audit.ProductID = &product.ID

	if len(product.Variants) == 0 {
		s.metrics.SampleProducts.WithLabelValues(metrics.ResultPartial).Inc()
		logger.WithField("shop_product_id", product.ID).Warn("sampling: produto criado sem variantes")
		s.record(ctx, audit, domain.SampleGenerationNoVariants, ErrProductWithoutVariants)
		return nil, NewSampleError(ErrProductWithoutVariants, apiErrors.ErrProductNoVariants, product.ID, "")
	}

	firstVariant := product.Variants[0]
	audit.VariantID = &firstVariant.ID

	variants, err := s.shopifyService.UpdateVariantPrices(ctx, session, product.ID, []domain.VariantPrice{
		{ID: firstVariant.ID, Price: s.cfg.Sample.Price},
	})
	if err != nil {
		s.metrics.SampleProducts.WithLabelValues(metrics.ResultPartial).Inc()
		logger.WithError(err).WithField("shop_product_id", product.ID).Error("sampling: produto criado, mas o preço não foi atualizado")
		audit.Attempts = 1
		s.record(ctx, audit, domain.SampleGenerationPendingPrice, err)
		return nil, NewSampleError(ErrVariantUpdateFailed, apiErrors.ErrPartialSampleCreate, product.ID, err.Error())
	}

	s.metrics.SampleProducts.WithLabelValues(metrics.ResultSuccess).Inc()
	audit.Attempts = 1
	s.record(ctx, audit, domain.SampleGenerationCompleted, nil)

	logger.WithFields(log.Fields{
		"shop_product_id": product.ID,
		"shop_title":      title,
	}).Info("sampling: produto de exemplo criado")

	return domain.NewSampleProductResult(product, variants), nil
}

func (s *Service) newAudit(shop, title string) *domain.SampleGeneration {
	now := s.now()
	return &domain.SampleGeneration{
		Shop:      shop,
		Title:     title,
		Price:     s.cfg.Sample.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// record grava a auditoria; falhas aqui só são registradas em log
func (s *Service) record(ctx context.Context, audit *domain.SampleGeneration, status domain.SampleGenerationStatus, cause error) {
	if s.repository == nil {
		return
	}

	logger := log.ForContext(ctx).WithField("shop", audit.Shop)

	id, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Error("sampling: falha ao gerar id da auditoria")
		return
	}

	audit.ID = id
	audit.Status = status
	if cause != nil {
		msg := cause.Error()
		audit.LastError = &msg
	}

	if err := s.repository.Save(ctx, audit); err != nil {
		logger.WithError(err).Error(fmt.Sprintf("sampling: falha ao salvar auditoria com status %s", status))
	}
}
