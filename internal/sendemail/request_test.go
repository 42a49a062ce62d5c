package sendemail_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailrelay/internal/sendemail"
	"github.com/dmitrymomot/mailrelay/pkg/mailer"
)

func TestEmailRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := sendemail.EmailRequest{From: "a@x.com", To: []string{"b@y.com"}, Subject: "Hi", Body: "Hello"}
	require.NoError(t, valid.Validate())

	t.Run("whitespace is not trimmed", func(t *testing.T) {
		t.Parallel()

		req := sendemail.EmailRequest{From: " ", To: []string{""}, Subject: " ", Body: " "}
		require.NoError(t, req.Validate())
	})

	t.Run("reports the first empty field", func(t *testing.T) {
		t.Parallel()

		req := sendemail.EmailRequest{Body: "Hello"}
		require.EqualError(t, req.Validate(), "From address is required")

		req.From = "a@x.com"
		require.EqualError(t, req.Validate(), "At least one recipient is required")

		req.To = []string{"b@y.com"}
		require.EqualError(t, req.Validate(), "Subject is required")

		req.Subject = "Hi"
		req.Body = ""
		require.EqualError(t, req.Validate(), "Body is required")
	})
}

func TestEmailRequest_Email(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		req := sendemail.EmailRequest{From: "a@x.com", To: []string{"b@y.com"}, Subject: "Hi", Body: "Hello"}
		require.Equal(t, &mailer.Email{
			From:    "a@x.com",
			To:      []string{"b@y.com"},
			Subject: "Hi",
			Text:    "Hello",
		}, req.Email())
	})

	t.Run("html", func(t *testing.T) {
		t.Parallel()

		req := sendemail.EmailRequest{From: "a@x.com", To: []string{"b@y.com"}, Subject: "Hi", Body: "<p>Hello</p>", IsHTML: true}
		email := req.Email()
		require.Equal(t, "<p>Hello</p>", email.HTML)
		require.Empty(t, email.Text)
		require.NoError(t, email.Validate())
	})
}
