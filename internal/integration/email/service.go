// Package email provides email sending functionality.
package email

import (
	"context"
	"net/mail"
	"strings"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	clock      adapter.Clock
	appName    string
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, clock adapter.Clock, appName, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		clock:      clock,
		appName:    appName,
		appBaseURL: appBaseURL,
	}
}

// QueueWelcomeEmail queues the welcome email sent after sign-up.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) (*entity.EmailJob, bool, error) {
	address := strings.TrimSpace(input.Email)
	if address == "" {
		return nil, false, domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"missing email",
			domainerror.ErrMissingRecipient,
		)
	}
	if _, err := mail.ParseAddress(address); err != nil {
		return nil, false, domainerror.NewEmailError(
			domainerror.ErrCodeEmailInvalidInput,
			"invalid email address",
			domainerror.ErrInvalidRecipient,
		)
	}

	if input.UserID != "" {
		existing, err := s.activeWelcome(ctx, input.UserID, address)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}
	}

	name := strings.TrimSpace(input.DisplayName)
	job := entity.NewEmailJob(
		entity.TemplateWelcome,
		address,
		name,
		"Welcome to "+s.appName,
		map[string]string{
			"display_name": name,
			"app_name":     s.appName,
			"app_url":      s.appBaseURL,
		},
		s.clock.Now(),
	)
	job.UserID = input.UserID

	if err := s.queue.Enqueue(ctx, job); err != nil {
		return nil, false, err
	}

	return job, true, nil
}

func (s *Service) activeWelcome(ctx context.Context, userID, address string) (*entity.EmailJob, error) {
	jobs, err := s.queue.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to look up queued emails",
			err,
		)
	}
	for _, job := range jobs {
		if job.TemplateType == entity.TemplateWelcome && job.IsActive() && strings.EqualFold(job.RecipientEmail, address) {
			return job, nil
		}
	}
	return nil, nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
