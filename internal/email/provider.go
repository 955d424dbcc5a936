package email

import "fmt"

// Config - настройки SMTP провайдера
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Validate проверяет конфигурацию провайдера
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// Email - одно исходящее сообщение
type Email struct {
	To      []string
	Subject string
	HTML    string
}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет готовое email сообщение
	Send(email *Email) error

	// SendTemplate рендерит шаблон и отправляет результат
	SendTemplate(to []string, subject, templateName string, data interface{}) error
}
