package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity action tags. The vocabulary is closed: handlers must use one of
// these constants rather than free-form strings.
const (
	ActionLogin             = "login"
	ActionLogout            = "logout"
	ActionRegistration      = "registration"
	ActionMedicineAdded     = "medicine_added"
	ActionRecordAdded       = "record_added"
	ActionPrescriptionAdded = "prescription_added"
	ActionMentalHealthLog   = "mental_health_logged"
	ActionLifestyleLog      = "lifestyle_logged"
	ActionInsuranceAdded    = "insurance_added"
	ActionProfileUpdated    = "profile_updated"
	ActionUserApproved      = "user_approved"
	ActionUserRejected      = "user_rejected"
	ActionUserDeleted       = "user_deleted"
	ActionSettingUpdated    = "setting_updated"
)

// ActivityLog is the append-only audit trail. Rows are never updated or
// deleted; user deletion keeps its audit rows with a null actor.
type ActivityLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Action    string     `gorm:"not null;size:50;index" json:"action"`
	Details   string     `gorm:"size:500" json:"details"`
	IPAddress string     `gorm:"size:45" json:"ip_address"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	User      *User      `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
