package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemSetting is a global key/value pair managed from the admin panel.
// The unique index on Key backs the upsert in SettingsService.
type SystemSetting struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key         string    `gorm:"not null;size:100;uniqueIndex" json:"key"`
	Value       string    `gorm:"not null;type:text" json:"value"`
	Description string    `gorm:"size:500" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *SystemSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
