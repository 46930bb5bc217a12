package email

import "context"

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет готовое сообщение
	Send(ctx context.Context, email *Email) error

	// SendTemplate рендерит шаблон и отправляет письмо
	SendTemplate(ctx context.Context, to []string, subject, templateName string, data TemplateData) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// TemplateRenderer определяет интерфейс для рендеринга шаблонов
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
