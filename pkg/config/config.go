package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App   AppConfig
	API   APIConfig
	State StateConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPFRONT_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"SHOPFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the client at the backend gateway.
type APIConfig struct {
	BaseURL        string        `envconfig:"SHOPFRONT_API_BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"SHOPFRONT_API_REQUEST_TIMEOUT" default:"15s"`
}

func (a APIConfig) validate() error {
	if strings.TrimSpace(a.BaseURL) == "" {
		return fmt.Errorf("%s is required", EnvAPIBaseURL)
	}
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("%s must be positive", EnvAPIRequestTimeout)
	}
	return nil
}

// StateConfig locates the durable client state file.
type StateConfig struct {
	Path string `envconfig:"SHOPFRONT_STATE_PATH" default:"shopfront.db"`
}
