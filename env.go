package paysdk

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config captures environment-driven client settings.
type Config struct {
	BaseURL     string        `envconfig:"TYRO_PAY_BASE_URL"`
	LiveMode    bool          `envconfig:"TYRO_PAY_LIVE_MODE"`
	HTTPTimeout time.Duration `envconfig:"TYRO_PAY_HTTP_TIMEOUT" default:"30s"`
}

// ConfigFromEnv loads client settings from TYRO_PAY_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("paysdk: load config: %w", err)
	}
	return cfg, nil
}

// ClientOptions expands the config into options for [NewClient].
func (c Config) ClientOptions() []ClientOption {
	opts := []ClientOption{
		WithHTTPClient(&http.Client{Timeout: c.HTTPTimeout}),
	}
	if c.BaseURL != "" {
		opts = append(opts, WithBaseURL(c.BaseURL))
	}
	if c.LiveMode {
		opts = append(opts, WithLiveMode())
	}
	return opts
}
