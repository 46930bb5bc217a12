package email

import (
	"context"
	"sync"

	"fitness_backend/internal/logger"
)

// NoopProvider используется, когда SMTP не настроен: письма только логируются
// и запоминаются (удобно в тестах).
type NoopProvider struct {
	renderer TemplateRenderer

	mu   sync.Mutex
	sent []Email
}

func NewNoopProvider(renderer TemplateRenderer) *NoopProvider {
	return &NoopProvider{renderer: renderer}
}

func (p *NoopProvider) Send(ctx context.Context, email *Email) error {
	p.mu.Lock()
	p.sent = append(p.sent, *email)
	p.mu.Unlock()

	logger.CtxDebug(ctx, "SMTP disabled, email not sent", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendTemplate(ctx context.Context, to []string, subject, templateName string, data TemplateData) error {
	body := ""
	if p.renderer != nil {
		rendered, err := p.renderer.Render(templateName, data)
		if err != nil {
			return err
		}
		body = rendered
	}
	return p.Send(ctx, &Email{To: to, Subject: subject, HTMLBody: body})
}

func (p *NoopProvider) Validate() error {
	return nil
}

// Sent возвращает копию отправленных писем
func (p *NoopProvider) Sent() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Email, len(p.sent))
	copy(out, p.sent)
	return out
}
