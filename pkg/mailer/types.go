package mailer

// Email represents a fully-prepared email message ready for sending.
// Exactly one of HTML or Text carries the body.
type Email struct {
	From    string   // Sender address
	Subject string   // Email subject
	HTML    string   // HTML body content
	Text    string   // Plain text body content
	To      []string // Recipients (at least one required)
}

// IsHTML reports whether the body is carried as HTML content.
func (e *Email) IsHTML() bool {
	return e.HTML != ""
}

// Body returns whichever body variant is set.
func (e *Email) Body() string {
	if e.IsHTML() {
		return e.HTML
	}
	return e.Text
}

// Validate checks that the email can be handed to a provider.
func (e *Email) Validate() error {
	switch {
	case e.From == "":
		return ErrNoSender
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.HTML == "" && e.Text == "":
		return ErrNoContent
	case e.HTML != "" && e.Text != "":
		return ErrAmbiguousContent
	}
	return nil
}
