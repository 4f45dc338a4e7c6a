package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceProvider extends a provider-role User with business metadata.
// The row is created at provider registration; capabilities stay dormant
// until the owning user is approved.
type ServiceProvider struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BusinessName  string    `gorm:"not null;size:255" json:"business_name"`
	ProviderType  string    `gorm:"size:50" json:"provider_type"`
	LicenseNumber string    `gorm:"size:100" json:"license_number"`
	Address       string    `gorm:"size:255" json:"address"`
	Description   string    `gorm:"type:text" json:"description"`
	IsVerified    bool      `gorm:"default:false" json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	User          User      `gorm:"foreignKey:UserID" json:"user"`
}

func (ServiceProvider) TableName() string {
	return "service_providers"
}
