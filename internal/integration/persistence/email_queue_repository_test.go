package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

func TestEmailQueueRepository(t *testing.T) {
	repo := NewEmailQueueRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

	ready := entity.NewEmailJob(entity.TemplateWelcome, "ada@example.com", "Ada", "Welcome", map[string]string{"display_name": "Ada"}, now.Add(-time.Minute))
	ready.UserID = "user-1"
	later := entity.NewEmailJob(entity.TemplateWelcome, "bob@example.com", "Bob", "Welcome", nil, now.Add(time.Hour))
	later.UserID = "user-2"
	require.NoError(t, repo.Enqueue(ctx, ready))
	require.NoError(t, repo.Enqueue(ctx, later))

	t.Run("claims only due jobs", func(t *testing.T) {
		jobs, err := repo.ClaimDue(ctx, now, 10)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, ready.ID, jobs[0].ID)
		assert.Equal(t, entity.EmailStatusProcessing, jobs[0].Status)
		assert.Equal(t, "Ada", jobs[0].TemplateData["display_name"])
		assert.Equal(t, "user-1", jobs[0].UserID)
	})

	t.Run("a claimed job is not handed out twice", func(t *testing.T) {
		jobs, err := repo.ClaimDue(ctx, now, 10)
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("save round trips the outcome", func(t *testing.T) {
		ready.MarkSent("re_123", now)
		require.NoError(t, repo.Save(ctx, ready))

		job, err := repo.FindByID(ctx, ready.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.EmailStatusSent, job.Status)
		assert.Equal(t, "re_123", job.ProviderID)
		require.NotNil(t, job.ProcessedAt)
		assert.True(t, job.ProcessedAt.Equal(now))
	})

	t.Run("lists by user", func(t *testing.T) {
		jobs, err := repo.ListByUser(ctx, "user-2")
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, later.ID, jobs[0].ID)
		assert.NotNil(t, jobs[0].TemplateData)

		jobs, err = repo.ListByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("later jobs are claimed once due", func(t *testing.T) {
		jobs, err := repo.ClaimDue(ctx, now.Add(2*time.Hour), 10)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, later.ID, jobs[0].ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.True(t, errors.Is(err, domainerror.ErrEmailJobNotFound))
	})
}
