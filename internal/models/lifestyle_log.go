package models

import (
	"time"

	"github.com/google/uuid"
)

type LifestyleLog struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Steps           int       `json:"steps"`
	ExerciseMinutes int       `json:"exercise_minutes"`
	WaterGlasses    int       `json:"water_glasses"`
	SleepHours      float64   `json:"sleep_hours"`
	Calories        int       `json:"calories"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	User            User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LifestyleLog) TableName() string {
	return "lifestyle_logs"
}
