// Package mailer provides a provider-agnostic email sending interface.
//
// The package defines the message model and the contract that provider
// adapters implement, so the request handling code never imports a provider SDK.
//
// # Architecture
//
//   - Email: a fully-prepared message with exactly one body variant (HTML or text)
//   - Sender: interface that email providers implement
//   - Pinger: optional interface for provider readiness checks
//   - ProviderError: typed error for rejections reported by the provider
//
// # Usage
//
// Sending through the built-in SES provider:
//
//	import (
//		"context"
//
//		"github.com/dmitrymomot/mailrelay/pkg/mailer"
//		"github.com/dmitrymomot/mailrelay/pkg/mailer/ses"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		sender, err := ses.New(ctx, ses.Config{Region: "us-east-1"})
//		if err != nil {
//			panic(err)
//		}
//
//		id, err := sender.Send(ctx, &mailer.Email{
//			From:    "team@example.com",
//			To:      []string{"user@example.com"},
//			Subject: "Welcome",
//			Text:    "Hello!",
//		})
//		if perr := mailer.AsProviderError(err); perr != nil {
//			// the provider rejected the message: perr.Code, perr.Message
//		}
//		_ = id
//	}
//
// # Custom Providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Name() string { return "my-provider" }
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) (string, error) {
//		// Send email using your provider's API
//		return "message-id", nil
//	}
//
// Return a *ProviderError when the provider rejects the message, and a plain
// error for transport or context failures.
//
// # Errors
//
// Email.Validate reports the following:
//
//   - ErrNoSender: No sender specified
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSubject: No subject provided
//   - ErrNoContent: Neither HTML nor text content provided
//   - ErrAmbiguousContent: Both HTML and text content provided
package mailer
