package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/shop-dashboard-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/shop-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/shop-dashboard-api/internal/api"
	"github.com/vfg2006/shop-dashboard-api/internal/config"
	"github.com/vfg2006/shop-dashboard-api/internal/scheduler"
	"github.com/vfg2006/shop-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/shop-dashboard-api/internal/usecases/sampling"
	"github.com/vfg2006/shop-dashboard-api/pkg/format"
	"github.com/vfg2006/shop-dashboard-api/pkg/metrics"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if cfg.Shopify.APISecret == "" {
		logrus.Warn("SHOPIFY_API_SECRET vazio: sessões não serão validadas (ONLY LOCAL)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()

	shopifyClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopifyClient)

	var sampleRepo repository.SampleGenerationRepository
	var reconcileService *scheduler.SampleReconcileService

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if err := postgres.EnsureSchema(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar o schema do PostgreSQL")
		}

		sampleRepo = repository.NewSampleGenerationRepository(pgConn)
		reconcileService = scheduler.NewSampleReconcileService(sampleRepo, shopifyIntegrator, m, cfg)

		if err := reconcileService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação de preços")
		}
	} else {
		logrus.Info("Banco de dados desabilitado: auditoria de produtos de exemplo desligada")
	}

	services := api.Services{
		SalesLoader:     analytics.NewService(cfg, shopifyIntegrator, m),
		SampleGenerator: sampling.NewService(cfg, shopifyIntegrator, sampleRepo, m, nil),
		Formatter:       format.New(cfg.Dashboard.CurrencySymbol, cfg.Dashboard.Locale),
		Metrics:         m,
	}
	if reconcileService != nil {
		services.SampleReconcile = reconcileService
	}

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
