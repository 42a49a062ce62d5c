package resend

import "errors"

// ErrMissingAPIKey indicates the Resend API key is not configured.
var ErrMissingAPIKey = errors.New("resend: api key is required")

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`
}
