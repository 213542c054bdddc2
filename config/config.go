package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g.
// LEGALSCAN_API_BASE_URL or LEGALSCAN_POLL_MAX_ATTEMPTS.
const EnvPrefix = "legalscan"

type Config struct {
	API  APIConfig  `yaml:"api"`
	Poll PollConfig `yaml:"poll"`
	Log  LogConfig  `yaml:"log"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url" envconfig:"API_BASE_URL" validate:"required,url"`
	Token          string `yaml:"token" envconfig:"API_TOKEN"`
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"API_TIMEOUT_SECONDS" validate:"gte=1"`
}

type PollConfig struct {
	IntervalMS  int `yaml:"interval_ms" envconfig:"POLL_INTERVAL_MS" validate:"gte=1"`
	MaxAttempts int `yaml:"max_attempts" envconfig:"POLL_MAX_ATTEMPTS" validate:"gte=1"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT" validate:"oneof=json text"`
}

// RequestTimeout returns the HTTP client timeout for a single request.
func (c *APIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Interval returns the fixed wait between poll attempts.
func (c *PollConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Load reads the optional YAML file at path, applies environment overrides,
// fills defaults and validates the result. A missing file is not an error;
// defaults alone are a working configuration.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Set defaults
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://127.0.0.1:8000"
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 60
	}
	if cfg.Poll.IntervalMS == 0 {
		cfg.Poll.IntervalMS = 500
	}
	if cfg.Poll.MaxAttempts == 0 {
		cfg.Poll.MaxAttempts = 60
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
