// Package config loads CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var validate = validator.New()

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"production" validate:"oneof=local production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn"`

	Engine     string `envconfig:"GOTRANS_ENGINE" default:"youdao"`
	SourceLang string `envconfig:"GOTRANS_FROM" default:"en"`
	TargetLang string `envconfig:"GOTRANS_TO" default:"zh"`

	// HTTP client timeout; 0 disables it.
	Timeout time.Duration `envconfig:"GOTRANS_TIMEOUT" default:"30s"`

	BingURL   string `envconfig:"GOTRANS_BING_URL" validate:"omitempty,url"`
	CibaURL   string `envconfig:"GOTRANS_CIBA_URL" validate:"omitempty,url"`
	YoudaoURL string `envconfig:"GOTRANS_YOUDAO_URL" validate:"omitempty,url"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		msgs := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", fe.Field(), fe.Tag(), fe.Param()))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	if c.Timeout < 0 {
		return fmt.Errorf("GOTRANS_TIMEOUT must be >= 0")
	}
	return nil
}

// LoadEnvFile loads variables from an optional .env file without overriding
// variables already set. A missing file is only an error when required.
func LoadEnvFile(path string, required bool) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
