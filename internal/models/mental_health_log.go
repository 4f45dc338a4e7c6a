package models

import (
	"time"

	"github.com/google/uuid"
)

// MentalHealthLog is a daily mood/stress/sleep check-in.
type MentalHealthLog struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	MoodScore   int       `gorm:"not null" json:"mood_score"`
	StressLevel int       `json:"stress_level"`
	SleepHours  float64   `json:"sleep_hours"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MentalHealthLog) TableName() string {
	return "mental_health_logs"
}
