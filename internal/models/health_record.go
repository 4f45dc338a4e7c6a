package models

import (
	"time"

	"github.com/google/uuid"
)

// HealthRecord is a single vitals snapshot. All measurements are optional;
// a record usually carries whichever subset the user filled in.
type HealthRecord struct {
	ID                     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	BloodPressureSystolic  *int      `json:"blood_pressure_systolic"`
	BloodPressureDiastolic *int      `json:"blood_pressure_diastolic"`
	BloodSugar             *float64  `json:"blood_sugar"`
	Weight                 *float64  `json:"weight"`
	HeartRate              *int      `json:"heart_rate"`
	Temperature            *float64  `json:"temperature"`
	OxygenLevel            *int      `json:"oxygen_level"`
	Notes                  string    `gorm:"type:text" json:"notes"`
	CreatedAt              time.Time `gorm:"index" json:"created_at"`
	// User is only preloaded in the admin overview; patient-surface
	// responses omit it.
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}
