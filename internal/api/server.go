package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-dashboard-api/internal/api/handler"
	"github.com/vfg2006/shop-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/shop-dashboard-api/internal/config"
	"github.com/vfg2006/shop-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/shop-dashboard-api/internal/usecases/sampling"
	"github.com/vfg2006/shop-dashboard-api/pkg/format"
	"github.com/vfg2006/shop-dashboard-api/pkg/metrics"
	"github.com/vfg2006/shop-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services reúne o que os handlers precisam; SampleReconcile é nil quando o banco está desabilitado
type Services struct {
	SalesLoader     analytics.SalesLoader
	SampleGenerator sampling.SampleGenerator
	SampleReconcile handler.CronJob
	Formatter       *format.Formatter
	Metrics         *metrics.Metrics
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.SalesLoader == nil || services.SampleGenerator == nil || services.Metrics == nil {
		return nil, fmt.Errorf("api: loader, action e métricas são obrigatórios")
	}

	session := middleware.ShopSession(cfg)

	cronServices := handler.CronJobServices{}
	if services.SampleReconcile != nil {
		cronServices.SampleReconcileService = services.SampleReconcile
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(services.Metrics.Handler())...),
		router.WithRoutes(handler.Sales(services.SalesLoader, session)...),
		router.WithRoutes(handler.SampleProducts(services.SampleGenerator, session)...),
		router.WithRoutes(handler.Dashboard(services.SalesLoader, services.Formatter, session)...),
		router.WithRoutes(handler.CronJobs(cronServices, session)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa, usado nos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server: erro durante a execução")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("server: sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("server: contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("server: iniciando desligamento gracioso")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: erro durante o desligamento")
		return err
	}

	logrus.Info("server: desligado com sucesso")
	return nil
}
