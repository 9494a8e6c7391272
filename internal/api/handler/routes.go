package handler

import (
	"net/http"

	"github.com/vfg2006/shop-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/shop-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/shop-dashboard-api/internal/usecases/sampling"
	"github.com/vfg2006/shop-dashboard-api/pkg/format"
)

type Middleware = func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Sales(loader analytics.SalesLoader, session Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/app/sales",
			Method:      http.MethodGet,
			Handler:     LoadSales(loader),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
	}
}

func SampleProducts(generator sampling.SampleGenerator, session Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/app/sample-products",
			Method:      http.MethodPost,
			Handler:     GenerateSampleProduct(generator),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
	}
}

func Dashboard(loader analytics.SalesLoader, formatter *format.Formatter, session Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/app",
			Method:      http.MethodGet,
			Handler:     DashboardPage(loader, formatter),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
		{
			Path:        "/app/dashboard",
			Method:      http.MethodGet,
			Handler:     DashboardJSON(loader, formatter),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
	}
}

func CronJobs(services CronJobServices, session Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{session},
		},
	}
}
