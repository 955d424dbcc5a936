package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailSender - реализация Provider поверх gomail
type GomailSender struct {
	config    Config
	dialer    *gomail.Dialer
	templates *TemplateManager
}

// NewGomailSender создает SMTP отправитель
func NewGomailSender(config Config) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}

	return &GomailSender{
		config:    config,
		dialer:    gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
		templates: tm,
	}, nil
}

// Send отправляет email
func (s *GomailSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendTemplate отправляет email используя шаблон
func (s *GomailSender) SendTemplate(to []string, subject, templateName string, data interface{}) error {
	htmlBody, err := s.templates.Render(templateName, data)
	if err != nil {
		return err
	}

	return s.Send(&Email{
		To:      to,
		Subject: subject,
		HTML:    htmlBody,
	})
}
