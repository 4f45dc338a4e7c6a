package services

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/healthtrackplus/healthtrack-backend/internal/models"
	"gorm.io/gorm"
)

// ActivityService appends rows to the audit trail. Logging is best-effort:
// a failed insert is reported through slog but never fails the action that
// triggered it.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record appends one audit row for the given actor.
func (s *ActivityService) Record(userID uuid.UUID, action, details, ip string) {
	entry := models.ActivityLog{
		UserID:    &userID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		slog.Error("activity log write failed",
			"action", action, "user_id", userID.String(), "error", err)
	}
}

// RecentForUser returns the user's latest audit entries, newest first.
func (s *ActivityService) RecentForUser(userID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// Recent returns the latest audit entries across all users with the actor
// preloaded, newest first.
func (s *ActivityService) Recent(limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := s.db.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
