// Package model defines database models for persistence layer.
package model

import "time"

// StateRecordModel represents the state_records table: one JSON document per storage key.
type StateRecordModel struct {
	Key       string    `gorm:"column:storage_key;type:varchar(255);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the StateRecordModel.
func (StateRecordModel) TableName() string {
	return "state_records"
}
