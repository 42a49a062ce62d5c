package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// Implementations hold a long-lived client and must be safe for concurrent use.
type Sender interface {
	// Name returns the provider name used in logs and metrics.
	Name() string

	// Send delivers an email message and returns the provider's message ID.
	// Provider rejections are returned as *ProviderError.
	Send(ctx context.Context, email *Email) (string, error)
}

// Pinger is implemented by senders that can cheaply verify that the
// provider is reachable with the configured credentials.
type Pinger interface {
	Ping(ctx context.Context) error
}
