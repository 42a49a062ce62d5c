package mailer

import (
	"errors"
)

var (
	// ErrNoSender indicates no sender address was specified.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither HTML nor text content was provided.
	ErrNoContent = errors.New("email must have HTML or text content")

	// ErrAmbiguousContent indicates both HTML and text content were provided.
	ErrAmbiguousContent = errors.New("email must have either HTML or text content, not both")
)

// ProviderError is returned by a Sender when the provider itself rejected
// the request (bad sender identity, throttling, invalid parameters).
// Transport and context failures are returned as plain errors instead.
type ProviderError struct {
	// Err is the underlying SDK error.
	Err error

	// Provider is the name of the provider that produced the error.
	Provider string

	// Code is the provider-specific error code, if any.
	Code string

	// Message is the provider's own error message.
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err as a ProviderError.
// An empty message falls back to err's text.
func NewProviderError(provider, code, message string, err error) *ProviderError {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &ProviderError{
		Err:      err,
		Provider: provider,
		Code:     code,
		Message:  message,
	}
}

// AsProviderError extracts a ProviderError from err's chain.
// Returns nil if there is none.
func AsProviderError(err error) *ProviderError {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr
	}
	return nil
}
