// Package models contains database model definitions.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the uuid primary key and the timestamps shared by all records.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a new uuid when the record has none yet.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	return nil
}

// All returns every model for auto migration.
func All() []interface{} {
	return []interface{}{
		&Profile{},
		&Project{},
		&Appointment{},
		&Quote{},
		&Payment{},
		&Document{},
		&PortfolioItem{},
		&ContactMessage{},
		&Notification{},
		&ActivityLog{},
	}
}
