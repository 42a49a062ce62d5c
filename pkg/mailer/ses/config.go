package ses

import "errors"

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-east-1"

// ErrInvalidConfig indicates an incomplete static credential pair.
var ErrInvalidConfig = errors.New("ses: access key and secret key must be set together")

// Config holds Amazon SES provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
// Leave the static keys empty to use the default AWS credential chain.
type Config struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
	SessionToken     string `env:"AWS_SESSION_TOKEN"`
	Endpoint         string `env:"SES_ENDPOINT"`          // Custom endpoint (e.g., LocalStack)
	ConfigurationSet string `env:"SES_CONFIGURATION_SET"` // Optional SES configuration set
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
}

func (c *Config) validate() error {
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return ErrInvalidConfig
	}
	return nil
}

func (c *Config) hasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}
