// Package config loads runtime settings from the environment. An optional
// .env file is read first; variables already set in the process win.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	API      APIConfig
	Log      LogConfig
	Temporal TemporalConfig

	// UserID is the operator recorded as seller on new invoices.
	UserID   int `env:"FACTURAS_USER_ID,default=1"`
	PageSize int `env:"FACTURAS_PAGE_SIZE,default=10"`
}

type APIConfig struct {
	BaseURL string        `env:"FACTURAS_API_BASE_URL,default=https://localhost:7224"`
	Timeout time.Duration `env:"FACTURAS_API_TIMEOUT,default=30s"`
}

type LogConfig struct {
	Level  string `env:"FACTURAS_LOG_LEVEL,default=info"`
	Format string `env:"FACTURAS_LOG_FORMAT,default=text"`
}

// TemporalConfig is optional. Saves run in process when Host is empty.
type TemporalConfig struct {
	Host      string `env:"FACTURAS_TEMPORAL_HOST"`
	Namespace string `env:"FACTURAS_TEMPORAL_NAMESPACE,default=default"`
	TaskQueue string `env:"FACTURAS_TEMPORAL_TASK_QUEUE,default=invoice-save"`
}

func (t TemporalConfig) Enabled() bool { return t.Host != "" }

// Load reads envFile when it exists and decodes the FACTURAS_* variables.
// An empty envFile means ".env".
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid FACTURAS_API_BASE_URL %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("FACTURAS_API_TIMEOUT must be positive")
	}
	if c.UserID <= 0 {
		return fmt.Errorf("FACTURAS_USER_ID must be positive")
	}
	if c.PageSize <= 0 || c.PageSize > 100 {
		return fmt.Errorf("FACTURAS_PAGE_SIZE must be between 1 and 100")
	}
	return nil
}
