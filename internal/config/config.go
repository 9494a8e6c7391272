package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Limite de pedidos por página da Admin API
const MaxOrdersLimit = 250

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Shopify         Shopify         `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	Sample          Sample          `mapstructure:",squash"`
	SampleReconcile SampleReconcile `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Shopify struct {
	ShopDomain     string        `mapstructure:"shopify_shop_domain"`
	AccessToken    string        `mapstructure:"shopify_access_token"`
	APIVersion     string        `mapstructure:"shopify_api_version"`
	APIKey         string        `mapstructure:"shopify_api_key"`
	APISecret      string        `mapstructure:"shopify_api_secret"`
	AdminBaseURL   string        `mapstructure:"shopify_admin_base_url"`
	RequestTimeout time.Duration `mapstructure:"shopify_request_timeout"`
}

type Dashboard struct {
	OrdersLimit    int    `mapstructure:"dashboard_orders_limit"`
	CurrencySymbol string `mapstructure:"dashboard_currency_symbol"`
	Locale         string `mapstructure:"dashboard_locale"`
}

type Sample struct {
	Price       string   `mapstructure:"sample_product_price"`
	Palette     []string `mapstructure:"sample_product_palette"`
	TitleSuffix string   `mapstructure:"sample_product_title_suffix"`
}

type SampleReconcile struct {
	CronSchedule string `mapstructure:"sample_reconcile_cron"`
	Enabled      bool   `mapstructure:"sample_reconcile_enabled"`
	MaxAttempts  int    `mapstructure:"sample_reconcile_max_attempts"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "https://admin.shopify.com")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/shop_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHOPIFY_SHOP_DOMAIN", "")
	viper.SetDefault("SHOPIFY_ACCESS_TOKEN", "")
	viper.SetDefault("SHOPIFY_API_VERSION", "2025-01")
	viper.SetDefault("SHOPIFY_API_KEY", "")
	viper.SetDefault("SHOPIFY_API_SECRET", "") // vazio desliga a validação do token de sessão (ONLY LOCAL)
	viper.SetDefault("SHOPIFY_ADMIN_BASE_URL", "")
	viper.SetDefault("SHOPIFY_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("DASHBOARD_ORDERS_LIMIT", 100)
	viper.SetDefault("DASHBOARD_CURRENCY_SYMBOL", "$")
	viper.SetDefault("DASHBOARD_LOCALE", "en-US")

	viper.SetDefault("SAMPLE_PRODUCT_PRICE", "100.00")
	viper.SetDefault("SAMPLE_PRODUCT_PALETTE", "Red,Orange,Yellow,Green")
	viper.SetDefault("SAMPLE_PRODUCT_TITLE_SUFFIX", "Snowboard")

	viper.SetDefault("SAMPLE_RECONCILE_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SAMPLE_RECONCILE_ENABLED", false)
	viper.SetDefault("SAMPLE_RECONCILE_MAX_ATTEMPTS", 5)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: .env não lido pelo viper, usando variáveis de ambiente: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() {
	c.Shopify.ShopDomain = strings.TrimSuffix(strings.TrimPrefix(c.Shopify.ShopDomain, "https://"), "/")
	c.Shopify.AdminBaseURL = strings.TrimSuffix(c.Shopify.AdminBaseURL, "/")

	palette := make([]string, 0, len(c.Sample.Palette))
	for _, color := range c.Sample.Palette {
		if color = strings.TrimSpace(color); color != "" {
			palette = append(palette, color)
		}
	}
	c.Sample.Palette = palette

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Validate rejeita configurações que quebrariam o loader ou a action
func (c *Config) Validate() error {
	var errs []error

	if c.Dashboard.OrdersLimit < 1 || c.Dashboard.OrdersLimit > MaxOrdersLimit {
		errs = append(errs, fmt.Errorf("DASHBOARD_ORDERS_LIMIT deve estar entre 1 e %d", MaxOrdersLimit))
	}

	if len(c.Sample.Palette) == 0 {
		errs = append(errs, errors.New("SAMPLE_PRODUCT_PALETTE não pode ser vazio"))
	}

	price, err := decimal.NewFromString(c.Sample.Price)
	if err != nil || price.IsNegative() {
		errs = append(errs, fmt.Errorf("SAMPLE_PRODUCT_PRICE inválido: %q", c.Sample.Price))
	}

	if c.Shopify.RequestTimeout <= 0 {
		errs = append(errs, errors.New("SHOPIFY_REQUEST_TIMEOUT deve ser positivo"))
	}

	if c.SampleReconcile.Enabled && !c.Database.Enabled {
		errs = append(errs, errors.New("SAMPLE_RECONCILE_ENABLED exige DATABASE_ENABLED"))
	}

	if c.SampleReconcile.Enabled && c.SampleReconcile.MaxAttempts < 1 {
		errs = append(errs, errors.New("SAMPLE_RECONCILE_MAX_ATTEMPTS deve ser ao menos 1"))
	}

	return errors.Join(errs...)
}

// loadEnvFile procura um .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
