package resend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

// ProviderName identifies Resend in logs, metrics and provider errors.
const ProviderName = "resend"

// EmailsAPI is the subset of the Resend emails service used by Sender.
type EmailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	emails EmailsAPI
}

// New creates a new Resend sender.
func New(cfg Config) (*Sender, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewWithClient(resend.NewClient(cfg.APIKey).Emails), nil
}

// NewWithClient creates a sender around an existing emails service.
func NewWithClient(emails EmailsAPI) *Sender {
	return &Sender{emails: emails}
}

// Name implements mailer.Sender.
func (s *Sender) Name() string {
	return ProviderName
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}

	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
	}
	if email.IsHTML() {
		req.Html = email.HTML
	} else {
		req.Text = email.Text
	}

	resp, err := s.emails.SendWithContext(ctx, req)
	if err != nil {
		return "", wrapError(err)
	}
	if resp == nil {
		return "", errors.New("resend: empty response")
	}

	return resp.Id, nil
}

// wrapError treats everything the API answered with as a provider error.
// Transport and context failures are returned as is.
func wrapError(err error) error {
	var urlErr *url.Error
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.As(err, &urlErr) {
		return fmt.Errorf("resend: %w", err)
	}
	msg := strings.TrimPrefix(err.Error(), "[ERROR]: ")
	return mailer.NewProviderError(ProviderName, "", msg, err)
}

// Ensure Sender implements mailer.Sender.
var _ mailer.Sender = (*Sender)(nil)
