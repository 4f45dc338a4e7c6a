package services

import (
	"time"

	"github.com/healthtrackplus/healthtrack-backend/internal/dto"
	"github.com/healthtrackplus/healthtrack-backend/internal/models"
	"gorm.io/gorm"
)

const (
	registrationWindowDays = 30
	monthBucketCount       = 6

	dayLabelFormat   = "2006-01-02"
	monthLabelFormat = "Jan 2006"

	// Label for users whose role column is empty.
	unknownRole = "Unknown"
)

// ReportService computes the admin reporting aggregations. Counts are exact
// tallies; buckets with no rows are not back-filled with zeros.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// TimeBucket is one (bucket, count) pair of a time-grouped aggregation.
type TimeBucket struct {
	Bucket time.Time `json:"bucket"`
	Count  int64     `json:"count"`
}

// RoleBucket is one (role, count) pair of the role distribution.
type RoleBucket struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// GetReports assembles all three summaries with their chart arrays.
func (s *ReportService) GetReports() (*dto.ReportsResponse, error) {
	days, err := s.RegistrationsByDay()
	if err != nil {
		return nil, err
	}
	months, err := s.HealthRecordsByMonth()
	if err != nil {
		return nil, err
	}
	roles, err := s.UsersByRole()
	if err != nil {
		return nil, err
	}

	return &dto.ReportsResponse{
		RegistrationsByDay:   BuildTimeChart(days, dayLabelFormat),
		HealthRecordsByMonth: BuildTimeChart(months, monthLabelFormat),
		UsersByRole:          BuildRoleChart(roles),
	}, nil
}

// RegistrationsByDay counts user registrations per calendar day over the
// trailing 30 days, ascending.
func (s *ReportService) RegistrationsByDay() ([]TimeBucket, error) {
	since := time.Now().AddDate(0, 0, -registrationWindowDays)

	var buckets []TimeBucket
	err := s.db.Model(&models.User{}).
		Select("DATE(created_at) AS bucket, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("bucket ASC").
		Scan(&buckets).Error
	return buckets, err
}

// HealthRecordsByMonth counts health-record creation per calendar month,
// most recent six buckets, descending.
func (s *ReportService) HealthRecordsByMonth() ([]TimeBucket, error) {
	var buckets []TimeBucket
	err := s.db.Model(&models.HealthRecord{}).
		Select("DATE_TRUNC('month', created_at) AS bucket, COUNT(*) AS count").
		Group("DATE_TRUNC('month', created_at)").
		Order("bucket DESC").
		Limit(monthBucketCount).
		Scan(&buckets).Error
	return buckets, err
}

// UsersByRole counts users per distinct role value, including the empty
// role as its own bucket.
func (s *ReportService) UsersByRole() ([]RoleBucket, error) {
	var buckets []RoleBucket
	err := s.db.Model(&models.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&buckets).Error
	return buckets, err
}

// BuildTimeChart serializes time buckets into parallel label/value arrays,
// preserving bucket order.
func BuildTimeChart(buckets []TimeBucket, labelFormat string) dto.ChartData {
	chart := dto.ChartData{
		Labels: make([]string, len(buckets)),
		Values: make([]int64, len(buckets)),
	}
	for i, b := range buckets {
		chart.Labels[i] = b.Bucket.Format(labelFormat)
		chart.Values[i] = b.Count
	}
	return chart
}

// BuildRoleChart serializes the role distribution, mapping an empty role
// value to the "Unknown" bucket.
func BuildRoleChart(buckets []RoleBucket) dto.ChartData {
	chart := dto.ChartData{
		Labels: make([]string, len(buckets)),
		Values: make([]int64, len(buckets)),
	}
	for i, b := range buckets {
		label := b.Role
		if label == "" {
			label = unknownRole
		}
		chart.Labels[i] = label
		chart.Values[i] = b.Count
	}
	return chart
}
