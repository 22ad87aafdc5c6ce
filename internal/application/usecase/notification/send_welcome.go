// Package notification contains the relay use cases that talk to outside services.
package notification

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/application/ledger"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// SendWelcomeInput represents the input for queueing a welcome email.
type SendWelcomeInput struct {
	UserID      string
	Email       string
	DisplayName string
}

// SendWelcomeOutput represents the output of queueing a welcome email.
type SendWelcomeOutput struct {
	JobID  uuid.UUID
	Queued bool
}

// SendWelcomeUseCase queues the welcome email for a newly signed-up user.
type SendWelcomeUseCase struct {
	emailService adapter.EmailService
}

// NewSendWelcomeUseCase creates a new SendWelcomeUseCase instance.
func NewSendWelcomeUseCase(emailService adapter.EmailService) *SendWelcomeUseCase {
	return &SendWelcomeUseCase{
		emailService: emailService,
	}
}

// Execute queues the email. Delivery happens later on the email worker.
func (uc *SendWelcomeUseCase) Execute(ctx context.Context, input SendWelcomeInput) (*SendWelcomeOutput, error) {
	if strings.TrimSpace(input.Email) == "" {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"missing email",
			domainerror.ErrMissingRecipient,
		)
	}

	// Anonymous callers share one namespace, so only signed-in users get the once-per-user check.
	owner := input.UserID
	if owner == ledger.PublicUserID {
		owner = ""
	}

	job, queued, err := uc.emailService.QueueWelcomeEmail(ctx, adapter.QueueWelcomeInput{
		UserID:      owner,
		Email:       input.Email,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		slog.Error("Failed to queue welcome email", "user_id", input.UserID, "error", err)
		return nil, err
	}

	if queued {
		slog.Info("Welcome email queued", "user_id", input.UserID, "job_id", job.ID)
	} else {
		slog.Debug("Welcome email already queued", "user_id", input.UserID, "job_id", job.ID)
	}

	return &SendWelcomeOutput{
		JobID:  job.ID,
		Queued: queued,
	}, nil
}
