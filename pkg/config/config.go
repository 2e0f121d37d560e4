package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Static   StaticConfig
	Render   RenderConfig
	Redis    RedisConfig
	Docstore DocstoreConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.HTTP.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"INSIGHTS_APP_ENV" default:"dev"`
	Port         string `envconfig:"INSIGHTS_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"INSIGHTS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"INSIGHTS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `envconfig:"INSIGHTS_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"INSIGHTS_HTTP_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"INSIGHTS_HTTP_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"INSIGHTS_HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
	MaxBodyBytes    int64         `envconfig:"INSIGHTS_HTTP_MAX_BODY_BYTES" default:"4194304"`
	CORSOrigins     []string      `envconfig:"INSIGHTS_HTTP_CORS_ORIGINS" default:"http://localhost:5000,http://127.0.0.1:5000"`
}

func (h HTTPConfig) validate() error {
	if h.MaxBodyBytes <= 0 {
		return fmt.Errorf("%s must be positive", EnvMaxBodyBytes)
	}
	return nil
}

type StaticConfig struct {
	Root  string `envconfig:"INSIGHTS_STATIC_ROOT" default:"./web"`
	Index string `envconfig:"INSIGHTS_STATIC_INDEX" default:"index.html"`
}

// RenderConfig sizes the generated charts in pixels.
type RenderConfig struct {
	PieSize      int           `envconfig:"INSIGHTS_RENDER_PIE_SIZE" default:"600"`
	BarWidth     int           `envconfig:"INSIGHTS_RENDER_BAR_WIDTH" default:"800"`
	BarHeight    int           `envconfig:"INSIGHTS_RENDER_BAR_HEIGHT" default:"500"`
	LineWidth    int           `envconfig:"INSIGHTS_RENDER_LINE_WIDTH" default:"1000"`
	LineHeight   int           `envconfig:"INSIGHTS_RENDER_LINE_HEIGHT" default:"500"`
	CacheTTL     time.Duration `envconfig:"INSIGHTS_RENDER_CACHE_TTL" default:"10m"`
	CacheEnabled bool          `envconfig:"INSIGHTS_RENDER_CACHE_ENABLED" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"INSIGHTS_REDIS_URL"`
	Address      string        `envconfig:"INSIGHTS_REDIS_ADDR"`
	Password     string        `envconfig:"INSIGHTS_REDIS_PASSWORD"`
	DB           int           `envconfig:"INSIGHTS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"INSIGHTS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"INSIGHTS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"INSIGHTS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"INSIGHTS_REDIS_READ_TIMEOUT" default:"2s"`
	WriteTimeout time.Duration `envconfig:"INSIGHTS_REDIS_WRITE_TIMEOUT" default:"2s"`
}

// Configured reports whether any redis endpoint was provided.
func (r RedisConfig) Configured() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type DocstoreConfig struct {
	BaseURL   string        `envconfig:"INSIGHTS_DOCSTORE_BASE_URL" default:"https://firestore.googleapis.com/v1"`
	ProjectID string        `envconfig:"PROJECT_ID"`
	APIKey    string        `envconfig:"GOOGLE_API_KEY"`
	PageSize  int           `envconfig:"INSIGHTS_DOCSTORE_PAGE_SIZE" default:"100"`
	Timeout   time.Duration `envconfig:"INSIGHTS_DOCSTORE_TIMEOUT" default:"30s"`
}
