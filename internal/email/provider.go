package email

// Provider sends outbound mail. Callers never wait on delivery: sends
// are enqueued on the outbox worker and failures only get logged.
type Provider interface {
	// Send delivers a single message.
	Send(msg *Message) error

	// SendVerification sends the email-verification message.
	SendVerification(to, token string) error

	// SendPasswordReset sends the password-reset message.
	SendPasswordReset(to, token string) error

	// Validate checks the provider configuration.
	Validate() error
}

// Message is one outbound email.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
}
