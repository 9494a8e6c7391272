// Package metrics expõe as métricas de negócio do dashboard no formato Prometheus
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shop_dashboard"

// Resultados usados como label
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultPartial = "partial"
)

type Metrics struct {
	registry        *prometheus.Registry
	SalesLoads      *prometheus.CounterVec
	OrdersLoaded    prometheus.Counter
	GrossSales      *prometheus.GaugeVec
	SampleProducts  *prometheus.CounterVec
	ReconciledItems *prometheus.CounterVec
}

// New cria um registro próprio, assim cada instância (e cada teste) é independente
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		SalesLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_loads_total",
			Help:      "Carregamentos do total de vendas por resultado",
		}, []string{"result"}),
		OrdersLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_loaded_total",
			Help:      "Pedidos lidos da plataforma para agregação",
		}),
		GrossSales: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gross_sales",
			Help:      "Última soma de vendas brutas calculada por loja",
		}, []string{"shop"}),
		SampleProducts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sample_products_total",
			Help:      "Produtos de exemplo gerados por resultado",
		}, []string{"result"}),
		ReconciledItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sample_reconciled_total",
			Help:      "Produtos de exemplo processados pela reconciliação de preço",
		}, []string{"result"}),
	}

	registry.MustRegister(
		m.SalesLoads,
		m.OrdersLoaded,
		m.GrossSales,
		m.SampleProducts,
		m.ReconciledItems,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serve o endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry é usado nos testes para inspecionar os valores
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
