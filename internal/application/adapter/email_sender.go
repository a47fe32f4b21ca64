// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// EmailSender defines the interface for sending transactional email.
type EmailSender interface {
	// SendPasswordReset sends a password reset email with the given reset link.
	SendPasswordReset(ctx context.Context, toEmail, toName, resetLink string) error
}
