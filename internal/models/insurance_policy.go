package models

import (
	"time"

	"github.com/google/uuid"
)

type InsurancePolicy struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ProviderName   string     `gorm:"not null;size:255" json:"provider_name"`
	PolicyNumber   string     `gorm:"not null;size:100" json:"policy_number"`
	PolicyType     string     `gorm:"size:100" json:"policy_type"`
	CoverageAmount float64    `json:"coverage_amount"`
	StartDate      time.Time  `gorm:"type:date" json:"start_date"`
	EndDate        *time.Time `gorm:"type:date" json:"end_date"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	User           User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (InsurancePolicy) TableName() string {
	return "insurance_policies"
}
