// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueWelcomeEmail queues the welcome email sent after sign-up. When the user already
	// has an active welcome email for the same address, that job is returned and queued is false.
	QueueWelcomeEmail(ctx context.Context, input QueueWelcomeInput) (job *entity.EmailJob, queued bool, err error)
}

// QueueWelcomeInput represents the input for queueing a welcome email.
// An empty UserID disables the once-per-user check.
type QueueWelcomeInput struct {
	UserID      string
	Email       string
	DisplayName string
}
