package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RolePatient  = "patient"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User is a platform account. Patients are approved at registration,
// providers stay unapproved until an admin acts on them.
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username         string    `gorm:"not null;size:150;uniqueIndex" json:"username"`
	Email            string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	FirstName        string    `gorm:"size:150" json:"first_name"`
	LastName         string    `gorm:"size:150" json:"last_name"`
	Phone            string    `gorm:"size:20" json:"phone"`
	Address          string    `gorm:"size:255" json:"address"`
	City             string    `gorm:"size:100" json:"city"`
	BloodGroup       string    `gorm:"size:5" json:"blood_group"`
	EmergencyContact string    `gorm:"size:150" json:"emergency_contact"`
	EmergencyPhone   string    `gorm:"size:20" json:"emergency_phone"`
	Role             string    `gorm:"size:20;not null;default:'patient';index" json:"role"`
	IsApproved       bool      `gorm:"default:false" json:"is_approved"`
	IsSuperuser      bool      `gorm:"default:false" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsAdmin reports whether the account may use the admin panel.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.IsSuperuser
}

// FullName joins first and last name, tolerating either being empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
