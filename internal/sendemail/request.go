package sendemail

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

// EmailRequest is the JSON payload of a send request.
// Keys are matched case-insensitively.
type EmailRequest struct {
	From    string   `json:"from"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	To      []string `json:"to"`
	IsHTML  bool     `json:"isHtml"`
}

// requestError is a client input error, answered with 400.
type requestError struct {
	Message string
	Details string
}

func (e *requestError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// decodeRequest parses and validates a raw request body.
// Every failure is a *requestError.
func decodeRequest(raw string) (*EmailRequest, error) {
	if raw == "" {
		return nil, &requestError{Message: msgBodyRequired}
	}

	var req *EmailRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return nil, &requestError{Message: msgInvalidJSON, Details: err.Error()}
	}
	if req == nil {
		return nil, &requestError{Message: msgInvalidBody}
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks the required fields in order from, to, subject, body
// and reports the first one that is empty.
func (r *EmailRequest) Validate() error {
	fields := []struct {
		value   any
		message string
	}{
		{r.From, msgFromRequired},
		{r.To, msgToRequired},
		{r.Subject, msgSubjectRequired},
		{r.Body, msgBodyMissing},
	}

	for _, f := range fields {
		if err := validation.Validate(f.value, validation.Required.Error(f.message)); err != nil {
			return &requestError{Message: err.Error()}
		}
	}

	return nil
}

// Email converts the request into a provider message. Exactly one body
// variant is populated, selected by IsHTML.
func (r *EmailRequest) Email() *mailer.Email {
	email := &mailer.Email{
		From:    r.From,
		To:      r.To,
		Subject: r.Subject,
	}
	if r.IsHTML {
		email.HTML = r.Body
	} else {
		email.Text = r.Body
	}
	return email
}
