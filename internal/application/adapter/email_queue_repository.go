package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// EmailQueueRepository is the outbound email queue.
type EmailQueueRepository interface {
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// ClaimDue moves up to limit pending jobs scheduled at or before now to processing
	// and returns them, oldest schedule first. A job is claimed by one caller only.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*entity.EmailJob, error)

	Save(ctx context.Context, job *entity.EmailJob) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)

	// ListByUser returns the jobs requested by a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.EmailJob, error)
}
