package models

import (
	"time"

	"github.com/google/uuid"
)

// Medicine is a medication the user is currently or previously taking.
type Medicine struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string     `gorm:"not null;size:255" json:"name"`
	Dosage       string     `gorm:"size:100" json:"dosage"`
	Frequency    string     `gorm:"size:100" json:"frequency"`
	StartDate    time.Time  `gorm:"type:date" json:"start_date"`
	EndDate      *time.Time `gorm:"type:date" json:"end_date"`
	PrescribedBy string     `gorm:"size:255" json:"prescribed_by"`
	Notes        string     `gorm:"type:text" json:"notes"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	User         User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
