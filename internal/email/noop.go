package email

import "eggslist_backend/internal/logger"

// NoopProvider logs instead of sending. Used in development and tests
// when SMTP is not configured.
type NoopProvider struct{}

func NewNoopProvider() Provider {
	return NoopProvider{}
}

func (NoopProvider) Send(msg *Message) error {
	logger.Info("email suppressed (noop provider)", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (NoopProvider) SendVerification(to, token string) error {
	logger.Info("verification email suppressed (noop provider)", "to", to)
	return nil
}

func (NoopProvider) SendPasswordReset(to, token string) error {
	logger.Info("password reset email suppressed (noop provider)", "to", to)
	return nil
}

func (NoopProvider) Validate() error { return nil }
