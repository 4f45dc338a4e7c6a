package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/healthtrackplus/healthtrack-backend/internal/dto"
	"github.com/healthtrackplus/healthtrack-backend/internal/models"
	"gorm.io/gorm"
)

// ErrAlreadyApproved guards the reject endpoint: rejection only applies to
// accounts still awaiting approval. Revoking an approved account goes
// through deletion instead.
var ErrAlreadyApproved = errors.New("user is already approved")

type AdminService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewAdminService(db *gorm.DB, activity *ActivityService) *AdminService {
	return &AdminService{db: db, activity: activity}
}

// AdminDashboard is the back-office landing page summary.
type AdminDashboard struct {
	TotalUsers           int64                `json:"total_users"`
	TotalPatients        int64                `json:"total_patients"`
	TotalProviders       int64                `json:"total_providers"`
	PendingApprovals     int64                `json:"pending_approvals"`
	TotalRecords         int64                `json:"total_records"`
	NewUsersThisWeek     int64                `json:"new_users_this_week"`
	RecentUsers          []models.User        `json:"recent_users"`
	RecentActivities     []models.ActivityLog `json:"recent_activities"`
	PendingRegistrations []models.User        `json:"pending_registrations"`
}

func (s *AdminService) GetDashboard() (*AdminDashboard, error) {
	d := &AdminDashboard{}

	if err := s.db.Model(&models.User{}).Count(&d.TotalUsers).Error; err != nil {
		return nil, err
	}
	s.db.Model(&models.User{}).Where("role = ?", models.RolePatient).Count(&d.TotalPatients)
	s.db.Model(&models.User{}).Where("role = ?", models.RoleProvider).Count(&d.TotalProviders)
	s.db.Model(&models.User{}).
		Where("is_approved = ? AND role = ?", false, models.RoleProvider).
		Count(&d.PendingApprovals)
	s.db.Model(&models.HealthRecord{}).Count(&d.TotalRecords)

	weekAgo := time.Now().AddDate(0, 0, -7)
	s.db.Model(&models.User{}).Where("created_at >= ?", weekAgo).Count(&d.NewUsersThisWeek)

	if err := s.db.Order("created_at DESC").Limit(5).Find(&d.RecentUsers).Error; err != nil {
		return nil, err
	}

	activities, err := s.activity.Recent(10)
	if err != nil {
		return nil, err
	}
	d.RecentActivities = activities

	if err := s.db.Where("is_approved = ?", false).Limit(5).Find(&d.PendingRegistrations).Error; err != nil {
		return nil, err
	}

	return d, nil
}

// ListUsers returns all users, optionally filtered by role and by a search
// term matched against username, email and first name.
func (s *AdminService) ListUsers(roleFilter, search string) ([]models.User, error) {
	query := s.db.Model(&models.User{}).Order("created_at DESC")

	if roleFilter != "" && roleFilter != "all" {
		query = query.Where("role = ?", roleFilter)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ? OR first_name ILIKE ?",
			pattern, pattern, pattern)
	}

	var users []models.User
	err := query.Find(&users).Error
	return users, err
}

// UserDetail is the admin view of one account.
type UserDetail struct {
	User          models.User           `json:"user"`
	HealthRecords []models.HealthRecord `json:"health_records"`
	Activities    []models.ActivityLog  `json:"activities"`
}

func (s *AdminService) GetUserDetail(userID uuid.UUID) (*UserDetail, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var records []models.HealthRecord
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(10).Find(&records).Error; err != nil {
		return nil, err
	}

	activities, err := s.activity.RecentForUser(userID, 20)
	if err != nil {
		return nil, err
	}

	return &UserDetail{User: user, HealthRecords: records, Activities: activities}, nil
}

// ApproveUser flips the approval flag. The audit row is attributed to the
// acting admin.
func (s *AdminService) ApproveUser(adminID, userID uuid.UUID, ip string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.db.Model(&user).Update("is_approved", true).Error; err != nil {
		return nil, err
	}
	user.IsApproved = true

	s.activity.Record(adminID, models.ActionUserApproved, "Approved user: "+user.Username, ip)
	return &user, nil
}

// RejectUser hard-deletes a still-unapproved account and everything it
// owns. Rejecting an approved account is refused.
func (s *AdminService) RejectUser(adminID, userID uuid.UUID, ip string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}
	if user.IsApproved {
		return ErrAlreadyApproved
	}

	if err := s.removeUser(&user); err != nil {
		return err
	}

	s.activity.Record(adminID, models.ActionUserRejected, "Rejected registration: "+user.Username, ip)
	return nil
}

// DeleteUser hard-deletes any account and everything it owns.
func (s *AdminService) DeleteUser(adminID, userID uuid.UUID, ip string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	if err := s.removeUser(&user); err != nil {
		return err
	}

	s.activity.Record(adminID, models.ActionUserDeleted, "Deleted user: "+user.Username, ip)
	return nil
}

// removeUser cascades a hard delete over every owned row in one
// transaction. Audit rows survive with their actor reference cleared.
func (s *AdminService) removeUser(user *models.User) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		id := user.ID
		tx.Where("user_id = ?", id).Delete(&models.RefreshToken{})
		tx.Where("user_id = ?", id).Delete(&models.ServiceProvider{})
		tx.Where("user_id = ?", id).Delete(&models.Medicine{})
		tx.Where("user_id = ?", id).Delete(&models.HealthRecord{})
		tx.Where("user_id = ?", id).Delete(&models.Prescription{})
		tx.Where("user_id = ?", id).Delete(&models.MentalHealthLog{})
		tx.Where("user_id = ?", id).Delete(&models.LifestyleLog{})
		tx.Where("user_id = ?", id).Delete(&models.InsurancePolicy{})
		tx.Model(&models.ActivityLog{}).Where("user_id = ?", id).Update("user_id", nil)
		return tx.Delete(user).Error
	})
}

func (s *AdminService) ListProviders() ([]models.ServiceProvider, error) {
	var providers []models.ServiceProvider
	err := s.db.Preload("User").Order("created_at DESC").Find(&providers).Error
	return providers, err
}

// HealthDataOverview is the cross-user records view with totals.
type HealthDataOverview struct {
	Records []models.HealthRecord `json:"records"`
	Stats   dto.HealthDataStats   `json:"stats"`
}

func (s *AdminService) GetHealthData() (*HealthDataOverview, error) {
	var records []models.HealthRecord
	if err := s.db.Preload("User").
		Order("created_at DESC").
		Limit(100).
		Find(&records).Error; err != nil {
		return nil, err
	}

	var stats dto.HealthDataStats
	s.db.Model(&models.HealthRecord{}).Count(&stats.TotalRecords)
	s.db.Model(&models.Medicine{}).Count(&stats.TotalMedicines)
	s.db.Model(&models.Prescription{}).Count(&stats.TotalPrescriptions)
	s.db.Model(&models.InsurancePolicy{}).Count(&stats.TotalPolicies)

	return &HealthDataOverview{Records: records, Stats: stats}, nil
}
