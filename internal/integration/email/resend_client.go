// Package email provides transactional email sending via Resend.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

const passwordResetSubject = "Redefinir sua senha"

var passwordResetHTML = template.Must(template.New("password_reset").Parse(`
<p>Olá{{if .Name}} {{.Name}}{{end}},</p>
<p>Recebemos um pedido para redefinir a senha da sua conta. Clique no link abaixo para escolher uma nova senha:</p>
<p><a href="{{.ResetLink}}">Redefinir senha</a></p>
<p>O link expira em 1 hora. Se você não pediu a redefinição, ignore este email.</p>
`))

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendPasswordReset sends a password reset email with the given reset link.
func (c *ResendClient) SendPasswordReset(ctx context.Context, toEmail, toName, resetLink string) error {
	var body bytes.Buffer
	err := passwordResetHTML.Execute(&body, struct {
		Name      string
		ResetLink string
	}{Name: toName, ResetLink: resetLink})
	if err != nil {
		return fmt.Errorf("failed to render password reset email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: passwordResetSubject,
		Html:    body.String(),
		Text:    fmt.Sprintf("Redefina sua senha: %s (o link expira em 1 hora)", resetLink),
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

var _ adapter.EmailSender = (*ResendClient)(nil)
