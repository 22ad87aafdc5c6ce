// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/planner/internal/application/adapter"
	"github.com/finance-tracker/planner/internal/integration/persistence/model"
)

// sqlStateStore implements the adapter.StateStore interface on a SQL table.
type sqlStateStore struct {
	db *gorm.DB
}

// NewSQLStateStore creates a new state store backed by the state_records table.
func NewSQLStateStore(db *gorm.DB) adapter.StateStore {
	return &sqlStateStore{
		db: db,
	}
}

// Load retrieves the document stored under key.
func (s *sqlStateStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var record model.StateRecordModel
	result := s.db.WithContext(ctx).Where("storage_key = ?", key).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, result.Error
	}
	return []byte(record.Value), true, nil
}

// Save upserts all records inside one transaction.
func (s *sqlStateStore) Save(ctx context.Context, records ...adapter.Record) error {
	if len(records) == 0 {
		return nil
	}
	now := time.Now().UTC()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range records {
			row := model.StateRecordModel{Key: r.Key, Value: string(r.Value), UpdatedAt: now}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "storage_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
