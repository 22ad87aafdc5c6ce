package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/planner/internal/domain/entity"
)

// EmailQueueModel is a row of the outbound email queue. It is shared by the
// postgres and sqlite backends, so column types stay portable.
type EmailQueueModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID         string            `gorm:"type:varchar(255);index"`
	Template       string            `gorm:"column:template_type;type:varchar(50);not null"`
	RecipientEmail string            `gorm:"type:varchar(255);not null"`
	RecipientName  string            `gorm:"type:varchar(255)"`
	Subject        string            `gorm:"type:varchar(500);not null"`
	Data           map[string]string `gorm:"column:template_data;type:text;serializer:json"`
	Status         string            `gorm:"type:varchar(20);not null;index:idx_email_queue_due,priority:1"`
	Attempts       int               `gorm:"not null;default:0"`
	MaxAttempts    int               `gorm:"not null;default:3"`
	LastError      string            `gorm:"type:text"`
	ProviderID     string            `gorm:"type:varchar(100)"`
	CreatedAt      time.Time         `gorm:"not null"`
	ScheduledAt    time.Time         `gorm:"not null;index:idx_email_queue_due,priority:2"`
	ProcessedAt    *time.Time
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts the row to a domain EmailJob.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	data := m.Data
	if data == nil {
		data = map[string]string{}
	}
	return &entity.EmailJob{
		ID:             m.ID,
		UserID:         m.UserID,
		TemplateType:   entity.EmailTemplateType(m.Template),
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		TemplateData:   data,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ProviderID:     m.ProviderID,
		CreatedAt:      m.CreatedAt.UTC(),
		ScheduledAt:    m.ScheduledAt.UTC(),
		ProcessedAt:    m.ProcessedAt,
	}
}

// EmailQueueModelFromEntity builds the row for a domain EmailJob. Times are stored in UTC.
func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	var processedAt *time.Time
	if job.ProcessedAt != nil {
		t := job.ProcessedAt.UTC()
		processedAt = &t
	}
	return &EmailQueueModel{
		ID:             job.ID,
		UserID:         job.UserID,
		Template:       string(job.TemplateType),
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		Data:           job.TemplateData,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ProviderID:     job.ProviderID,
		CreatedAt:      job.CreatedAt.UTC(),
		ScheduledAt:    job.ScheduledAt.UTC(),
		ProcessedAt:    processedAt,
	}
}
