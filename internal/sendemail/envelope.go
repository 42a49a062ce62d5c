package sendemail

import (
	"encoding/json"
	"maps"
	"net/http"
)

// Response messages. Clients match on these strings, keep them stable.
const (
	msgBodyRequired    = "Request body is required"
	msgInvalidJSON     = "Invalid JSON format"
	msgInvalidBody     = "Invalid request body"
	msgFromRequired    = "From address is required"
	msgToRequired      = "At least one recipient is required"
	msgSubjectRequired = "Subject is required"
	msgBodyMissing     = "Body is required"
	msgBodyTooLarge    = "Request body too large"
	msgSent            = "Email sent successfully"
	msgSendFailed      = "Failed to send email"
	msgInternal        = "Internal server error"
)

var responseHeaders = map[string]string{
	"Content-Type":                 "application/json",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
	"Access-Control-Allow-Methods": "POST,OPTIONS",
}

// Envelope is the status, JSON body and headers produced by one invocation.
type Envelope struct {
	Headers    map[string]string
	Body       string
	StatusCode int
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type successBody struct {
	Message   string   `json:"message"`
	MessageID string   `json:"messageId"`
	From      string   `json:"from"`
	To        []string `json:"to"`
}

// ResponseHeaders returns a copy of the headers set on every envelope.
func ResponseHeaders() map[string]string {
	return maps.Clone(responseHeaders)
}

func newEnvelope(status int, payload any) Envelope {
	body, err := json.Marshal(payload)
	if err != nil {
		// payload types are plain structs of strings; keep the contract anyway
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorBody{Error: msgInternal, Details: err.Error()})
	}
	return Envelope{
		StatusCode: status,
		Body:       string(body),
		Headers:    ResponseHeaders(),
	}
}

// ErrorEnvelope builds an error response. Empty details are omitted from the body.
func ErrorEnvelope(status int,message, details string) Envelope {
	return newEnvelope(status, errorBody{Error: message, Details: details})
}

// InternalErrorEnvelope builds the 500 response for an unclassified failure.
func InternalErrorEnvelope(err error) Envelope {
	return ErrorEnvelope(http.StatusInternalServerError, msgInternal, err.Error())
}

// PreflightEnvelope builds the empty 204 response for a CORS preflight.
func PreflightEnvelope() Envelope {
	return Envelope{
		StatusCode: http.StatusNoContent,
		Headers:    ResponseHeaders(),
	}
}

// WriteEnvelope writes env to w.
func WriteEnvelope(w http.ResponseWriter, env Envelope) {
	h := w.Header()
	for k, v := range env.Headers {
		h.Set(k, v)
	}
	w.WriteHeader(env.StatusCode)
	if env.Body != "" {
		_, _ = w.Write([]byte(env.Body))
	}
}
