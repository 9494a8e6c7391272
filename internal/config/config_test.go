package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Shopify: Shopify{
			ShopDomain:     "https://demo.myshopify.com/",
			RequestTimeout: 30 * time.Second,
		},
		Dashboard: Dashboard{OrdersLimit: 100},
		Sample: Sample{
			Price:   "100.00",
			Palette: []string{" Red", "Orange ", "", "Yellow", "Green"},
		},
		Database: Database{Driver: "postgres", User: "u", Password: "p", URL: "db:5432/x"},
	}
}

func TestConfig_normalize(t *testing.T) {
	cfg := validConfig()
	cfg.normalize()

	assert.Equal(t, "demo.myshopify.com", cfg.Shopify.ShopDomain)
	assert.Equal(t, []string{"Red", "Orange", "Yellow", "Green"}, cfg.Sample.Palette)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.Database.DSN)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "Configuração válida",
			mutate: func(c *Config) {},
		},
		{
			name:    "Limite de pedidos acima do máximo da plataforma",
			mutate:  func(c *Config) { c.Dashboard.OrdersLimit = 251 },
			wantErr: "DASHBOARD_ORDERS_LIMIT",
		},
		{
			name:    "Limite de pedidos zerado",
			mutate:  func(c *Config) { c.Dashboard.OrdersLimit = 0 },
			wantErr: "DASHBOARD_ORDERS_LIMIT",
		},
		{
			name:    "Paleta vazia",
			mutate:  func(c *Config) { c.Sample.Palette = nil },
			wantErr: "SAMPLE_PRODUCT_PALETTE",
		},
		{
			name:    "Preço inválido",
			mutate:  func(c *Config) { c.Sample.Price = "cem" },
			wantErr: "SAMPLE_PRODUCT_PRICE",
		},
		{
			name:    "Preço negativo",
			mutate:  func(c *Config) { c.Sample.Price = "-1.00" },
			wantErr: "SAMPLE_PRODUCT_PRICE",
		},
		{
			name:    "Reconciliação sem banco",
			mutate:  func(c *Config) { c.SampleReconcile.Enabled = true },
			wantErr: "DATABASE_ENABLED",
		},
		{
			name: "Reconciliação sem tentativas",
			mutate: func(c *Config) {
				c.Database.Enabled = true
				c.SampleReconcile.Enabled = true
				c.SampleReconcile.MaxAttempts = 0
			},
			wantErr: "SAMPLE_RECONCILE_MAX_ATTEMPTS",
		},
		{
			name: "Reconciliação com tentativas negativas",
			mutate: func(c *Config) {
				c.Database.Enabled = true
				c.SampleReconcile.Enabled = true
				c.SampleReconcile.MaxAttempts = -1
			},
			wantErr: "SAMPLE_RECONCILE_MAX_ATTEMPTS",
		},
		{
			name: "Reconciliação válida",
			mutate: func(c *Config) {
				c.Database.Enabled = true
				c.SampleReconcile.Enabled = true
				c.SampleReconcile.MaxAttempts = 5
			},
		},
		{
			name:   "Tentativas ignoradas com reconciliação desligada",
			mutate: func(c *Config) { c.SampleReconcile.MaxAttempts = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.normalize()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
