package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DatabaseURL string `env:"DATABASE_URL"`

	// RedisURL is optional; when empty the token cache is disabled and
	// authentication always hits the database.
	RedisURL      string        `env:"REDIS_URL"`
	TokenCacheTTL time.Duration `env:"TOKEN_CACHE_TTL" envDefault:"5m"`

	// RelayTimeout bounds each outbound relay call during fan-out.
	RelayTimeout time.Duration `env:"RELAY_TIMEOUT" envDefault:"10s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	TracingEnabled       bool    `env:"OTEL_TRACING_ENABLED" envDefault:"false"`
	TracingServiceName   string  `env:"OTEL_SERVICE_NAME" envDefault:"data-pusher"`
	TracingSamplingRatio float64 `env:"OTEL_TRACE_SAMPLING_RATIO" envDefault:"1.0"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []string
	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}
	if c.RelayTimeout <= 0 {
		errs = append(errs, "RELAY_TIMEOUT must be > 0")
	}
	if c.TokenCacheTTL <= 0 {
		errs = append(errs, "TOKEN_CACHE_TTL must be > 0")
	}
	if c.TracingSamplingRatio < 0 || c.TracingSamplingRatio > 1 {
		errs = append(errs, "OTEL_TRACE_SAMPLING_RATIO must be between 0 and 1")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
