package models

import (
	"time"

	"github.com/google/uuid"
)

type Prescription struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	DoctorName       string     `gorm:"not null;size:255" json:"doctor_name"`
	HospitalName     string     `gorm:"size:255" json:"hospital_name"`
	Diagnosis        string     `gorm:"not null;type:text" json:"diagnosis"`
	PrescriptionDate time.Time  `gorm:"type:date" json:"prescription_date"`
	FollowUpDate     *time.Time `gorm:"type:date" json:"follow_up_date"`
	Notes            string     `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	User             User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
