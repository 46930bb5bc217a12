package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactNotificationTemplate(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateContactNotification, TemplateData{
		"Name":    "Ravi <script>",
		"Email":   "ravi@example.com",
		"Message": "Do you have yoga on Sundays?",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "ravi@example.com")
	assert.Contains(t, html, "Do you have yoga on Sundays?")
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "Phone:")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := NewTemplateManager().Render("missing", nil)
	assert.Error(t, err)
}

func TestNoopProviderRecordsMessages(t *testing.T) {
	p := NewNoopProvider(NewTemplateManager())

	err := p.SendTemplate(context.Background(), []string{"admin@example.com"}, "Hi",
		TemplateContactNotification, TemplateData{"Name": "A", "Email": "a@b.c", "Message": "m"})
	require.NoError(t, err)

	sent := p.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"admin@example.com"}, sent[0].To)
	assert.Contains(t, sent[0].HTMLBody, "a@b.c")
}

func TestSMTPProviderValidate(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Port: 587}, nil)
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587}, nil)
	assert.NoError(t, p.Validate())
}
