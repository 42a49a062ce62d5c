package ses

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

// ProviderName identifies SES in logs, metrics and provider errors.
const ProviderName = "ses"

const charset = "UTF-8"

// API is the subset of the SES client used by Sender.
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
	GetSendQuota(ctx context.Context, params *ses.GetSendQuotaInput, optFns ...func(*ses.Options)) (*ses.GetSendQuotaOutput, error)
}

// Sender implements mailer.Sender using the Amazon SES API.
type Sender struct {
	client API
	cfg    Config
}

// New creates a new SES sender. The client is created once and reused
// for every send.
func New(ctx context.Context, cfg Config) (*Sender, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.hasStaticCredentials() {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("ses: failed to load aws config: %w", err)
	}

	client := ses.NewFromConfig(awsCfg, func(o *ses.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a sender around an existing SES client.
func NewWithClient(client API, cfg Config) *Sender {
	cfg.applyDefaults()
	return &Sender{client: client, cfg: cfg}
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

	out, err := s.client.SendEmail(ctx, s.buildInput(email))
	if err != nil {
		return "", wrapError(err)
	}

	return aws.ToString(out.MessageId), nil
}

// Ping verifies the credentials and endpoint by reading the account send quota.
func (s *Sender) Ping(ctx context.Context) error {
	if _, err := s.client.GetSendQuota(ctx, &ses.GetSendQuotaInput{}); err != nil {
		return wrapError(err)
	}
	return nil
}

func (s *Sender) buildInput(email *mailer.Email) *ses.SendEmailInput {
	body := &types.Body{}
	if email.IsHTML() {
		body.Html = content(email.HTML)
	} else {
		body.Text = content(email.Text)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(email.From),
		Destination: &types.Destination{
			ToAddresses: email.To,
		},
		Message: &types.Message{
			Subject: content(email.Subject),
			Body:    body,
		},
	}

	if s.cfg.ConfigurationSet != "" {
		input.ConfigurationSetName = aws.String(s.cfg.ConfigurationSet)
	}

	return input
}

func content(data string) *types.Content {
	return &types.Content{
		Data:    aws.String(data),
		Charset: aws.String(charset),
	}
}

// wrapError classifies SES API errors as provider errors.
// Anything without an API error code (network, context, signing) is returned as is.
func wrapError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return mailer.NewProviderError(ProviderName, apiErr.ErrorCode(), apiErr.ErrorMessage(), err)
	}
	return fmt.Errorf("ses: %w", err)
}

// Ensure Sender implements mailer.Sender and mailer.Pinger.
var (
	_ mailer.Sender = (*Sender)(nil)
	_ mailer.Pinger = (*Sender)(nil)
)
