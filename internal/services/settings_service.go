package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/healthtrackplus/healthtrack-backend/internal/dto"
	"github.com/healthtrackplus/healthtrack-backend/internal/models"
	"gorm.io/gorm"
)

type SettingsService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewSettingsService(db *gorm.DB, activity *ActivityService) *SettingsService {
	return &SettingsService{db: db, activity: activity}
}

func (s *SettingsService) List() ([]models.SystemSetting, error) {
	var settings []models.SystemSetting
	err := s.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

// Upsert writes one setting keyed by its name: read-then-branch under the
// unique index on key, so a repeated submission updates the single existing
// row rather than inserting a second one.
func (s *SettingsService) Upsert(adminID uuid.UUID, req *dto.UpsertSettingRequest, ip string) (*models.SystemSetting, error) {
	var setting models.SystemSetting
	err := s.db.Where("key = ?", req.Key).First(&setting).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.SystemSetting{
			ID:          uuid.New(),
			Key:         req.Key,
			Value:       req.Value,
			Description: req.Description,
		}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		setting.Value = req.Value
		setting.Description = req.Description
		setting.UpdatedAt = time.Now()
		if err := s.db.Save(&setting).Error; err != nil {
			return nil, err
		}
	}

	s.activity.Record(adminID, models.ActionSettingUpdated, "Updated setting: "+req.Key, ip)
	return &setting, nil
}
