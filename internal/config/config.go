// Package config loads the service configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrymomot/mailrelay/pkg/logger"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/resend"
	"github.com/dmitrymomot/mailrelay/pkg/mailer/ses"
)

// Supported mail providers.
const (
	ProviderSES    = "ses"
	ProviderResend = "resend"
)

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Address         string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	SendPath        string        `env:"HTTP_SEND_PATH" envDefault:"/send"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SendTimeout     time.Duration `env:"HTTP_SEND_TIMEOUT" envDefault:"30s"`
	MaxBodyBytes    int64         `env:"HTTP_MAX_BODY_BYTES" envDefault:"10485760"`
}

// Config is the complete service configuration.
type Config struct {
	HTTP           HTTPConfig
	Log            logger.Config
	Provider       string `env:"MAIL_PROVIDER" envDefault:"ses"`
	SES            ses.Config
	Resend         resend.Config
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses the given variables instead of the process environment.
// A nil map reads the process environment.
func LoadFrom(environment map[string]string) (*Config, error) {
	var opts env.Options
	if environment != nil {
		opts.Environment = environment
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

// Validate checks field values and cross-field requirements.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Provider,
			validation.Required,
			validation.In(ProviderSES, ProviderResend),
		),
		validation.Field(&c.HTTP, validation.By(func(value any) error {
			hc, ok := value.(HTTPConfig)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be an HTTPConfig")
			}
			return validation.ValidateStruct(&hc,
				validation.Field(&hc.Address, validation.Required),
				validation.Field(&hc.SendPath, validation.Required, validation.By(validatePath)),
				validation.Field(&hc.ShutdownTimeout, validation.Min(time.Duration(0))),
				validation.Field(&hc.SendTimeout, validation.Min(time.Duration(0))),
				validation.Field(&hc.MaxBodyBytes, validation.Required, validation.Min(int64(1))),
			)
		})),
		validation.Field(&c.Log, validation.By(func(value any) error {
			lc, ok := value.(logger.Config)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be a logger.Config")
			}
			if _, err := logger.ParseLevel(lc.Level); err != nil {
				return validation.NewError("validation_invalid_log_level", "must be one of debug, info, warn, error")
			}
			return nil
		})),
		validation.Field(&c.SES, validation.When(c.Provider == ProviderSES, validation.By(func(value any) error {
			sc, ok := value.(ses.Config)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be a ses.Config")
			}
			if (sc.AccessKeyID == "") != (sc.SecretAccessKey == "") {
				return validation.NewError("validation_partial_credentials", "AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set together")
			}
			return nil
		}))),
		validation.Field(&c.Resend, validation.When(c.Provider == ProviderResend, validation.By(func(value any) error {
			rc, ok := value.(resend.Config)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be a resend.Config")
			}
			if rc.APIKey == "" {
				return validation.NewError("validation_missing_api_key", "RESEND_API_KEY is required")
			}
			return nil
		}))),
	)
}

func validatePath(value any) error {
	path, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}
	if !strings.HasPrefix(path, "/") {
		return validation.NewError("validation_invalid_path", "must start with /")
	}
	return nil
}
