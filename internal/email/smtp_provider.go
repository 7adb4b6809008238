package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config holds SMTP settings and the public base URL used in links.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	SiteURL   string
}

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	config    Config
	dialer    *gomail.Dialer
	templates *templateManager
}

func NewSMTPProvider(cfg Config) (*SMTPProvider, error) {
	tm, err := newTemplateManager()
	if err != nil {
		return nil, err
	}

	p := &SMTPProvider{
		config:    cfg,
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		templates: tm,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *SMTPProvider) Send(msg *Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendVerification(to, token string) error {
	link := fmt.Sprintf("%s/email-verify-confirm?token=%s", p.config.SiteURL, token)

	body, err := p.templates.Render("verification", TemplateData{"Link": link})
	if err != nil {
		return err
	}

	return p.Send(&Message{
		To:       []string{to},
		Subject:  "Verify your email",
		HTMLBody: body,
	})
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	link := fmt.Sprintf("%s/password-reset-confirm?token=%s", p.config.SiteURL, token)

	body, err := p.templates.Render("password_reset", TemplateData{
		"Link": link,
		"TTL":  "2 hours",
	})
	if err != nil {
		return err
	}

	return p.Send(&Message{
		To:       []string{to},
		Subject:  "Reset your password",
		HTMLBody: body,
	})
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("from address is required")
	}
	return nil
}
