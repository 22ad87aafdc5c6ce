package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailJobRetries(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("temporary failure reschedules with backoff", func(t *testing.T) {
		job := NewEmailJob(TemplateWelcome, "a@b.c", "A", "Welcome", nil, now)
		job.MarkFailed(errors.New("timeout"), false, now)

		require.Equal(t, EmailStatusPending, job.Status)
		assert.Equal(t, 1, job.Attempts)
		assert.True(t, job.ScheduledAt.Equal(now.Add(time.Minute)), "expected retry in one minute, got %s", job.ScheduledAt)
		assert.False(t, job.IsReadyToProcess(now), "job must not be ready before its backoff elapses")
		assert.True(t, job.IsReadyToProcess(now.Add(time.Minute)))
	})

	t.Run("permanent failure stops retries", func(t *testing.T) {
		job := NewEmailJob(TemplateWelcome, "a@b.c", "A", "Welcome", nil, now)
		job.MarkFailed(errors.New("422 validation"), true, now)

		require.Equal(t, EmailStatusFailed, job.Status)
		assert.NotNil(t, job.ProcessedAt)
	})

	t.Run("attempts are exhausted after max attempts", func(t *testing.T) {
		job := NewEmailJob(TemplateWelcome, "a@b.c", "A", "Welcome", nil, now)
		for i := 0; i < job.MaxAttempts; i++ {
			job.MarkFailed(errors.New("boom"), false, now)
		}
		assert.Equal(t, EmailStatusFailed, job.Status)
	})

	t.Run("sent job records provider id", func(t *testing.T) {
		job := NewEmailJob(TemplateWelcome, "a@b.c", "A", "Welcome", nil, now)
		job.MarkSent("re_123", now)
		assert.Equal(t, EmailStatusSent, job.Status)
		assert.Equal(t, "re_123", job.ProviderID)
	})
}
