package services

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/healthtrackplus/healthtrack-backend/internal/auth"
	"github.com/healthtrackplus/healthtrack-backend/internal/dto"
	"github.com/healthtrackplus/healthtrack-backend/internal/models"
	"gorm.io/gorm"
)

const historyLimit = 30

// RecordService owns the patient surface: per-entity lists and creates,
// the dashboard summary, and profile updates. Every query is scoped to the
// owning user.
type RecordService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewRecordService(db *gorm.DB, activity *ActivityService) *RecordService {
	return &RecordService{db: db, activity: activity}
}

// Dashboard is the patient landing-page summary.
type Dashboard struct {
	LatestRecord     *models.HealthRecord `json:"latest_record"`
	ActiveMedicines  int64                `json:"active_medicines"`
	RecentActivities []models.ActivityLog `json:"recent_activities"`
	LatestLifestyle  *models.LifestyleLog `json:"latest_lifestyle"`
}

func (s *RecordService) GetDashboard(userID uuid.UUID) (*Dashboard, error) {
	d := &Dashboard{}

	var record models.HealthRecord
	if err := s.db.Scopes(auth.OwnedBy(userID)).Order("created_at DESC").First(&record).Error; err == nil {
		d.LatestRecord = &record
	}

	if err := s.db.Model(&models.Medicine{}).
		Scopes(auth.OwnedBy(userID)).
		Where("is_active = ?", true).
		Count(&d.ActiveMedicines).Error; err != nil {
		return nil, err
	}

	activities, err := s.activity.RecentForUser(userID, 5)
	if err != nil {
		return nil, err
	}
	d.RecentActivities = activities

	var lifestyle models.LifestyleLog
	if err := s.db.Scopes(auth.OwnedBy(userID)).Order("created_at DESC").First(&lifestyle).Error; err == nil {
		d.LatestLifestyle = &lifestyle
	}

	return d, nil
}

func (s *RecordService) ListMedicines(userID uuid.UUID) ([]models.Medicine, int64, error) {
	var medicines []models.Medicine
	if err := s.db.Scopes(auth.OwnedBy(userID)).Order("created_at DESC").Find(&medicines).Error; err != nil {
		return nil, 0, err
	}

	var active int64
	for _, m := range medicines {
		if m.IsActive {
			active++
		}
	}
	return medicines, active, nil
}

func (s *RecordService) CreateMedicine(userID uuid.UUID, req *dto.CreateMedicineRequest, ip string) (*models.Medicine, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	medicine := models.Medicine{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Frequency:    req.Frequency,
		StartDate:    start,
		EndDate:      end,
		PrescribedBy: req.PrescribedBy,
		Notes:        req.Notes,
		IsActive:     true,
	}
	if err := s.db.Create(&medicine).Error; err != nil {
		return nil, err
	}

	s.activity.Record(userID, models.ActionMedicineAdded, "Added medicine: "+req.Name, ip)
	return &medicine, nil
}

func (s *RecordService) ListHealthRecords(userID uuid.UUID) ([]models.HealthRecord, error) {
	var records []models.HealthRecord
	err := s.db.Scopes(auth.OwnedBy(userID)).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&records).Error
	return records, err
}

func (s *RecordService) CreateHealthRecord(userID uuid.UUID, req *dto.CreateHealthRecordRequest, ip string) (*models.HealthRecord, error) {
	record := models.HealthRecord{
		ID:                     uuid.New(),
		UserID:                 userID,
		BloodPressureSystolic:  req.BloodPressureSystolic,
		BloodPressureDiastolic: req.BloodPressureDiastolic,
		BloodSugar:             req.BloodSugar,
		Weight:                 req.Weight,
		HeartRate:              req.HeartRate,
		Temperature:            req.Temperature,
		OxygenLevel:            req.OxygenLevel,
		Notes:                  req.Notes,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}

	s.activity.Record(userID, models.ActionRecordAdded, "Added new health record", ip)
	return &record, nil
}

// MentalHealthSummary pairs the latest logs with the running mood average.
type MentalHealthSummary struct {
	Logs    []models.MentalHealthLog `json:"logs"`
	AvgMood float64                  `json:"avg_mood"`
}

func (s *RecordService) ListMentalHealthLogs(userID uuid.UUID) (*MentalHealthSummary, error) {
	var logs []models.MentalHealthLog
	if err := s.db.Scopes(auth.OwnedBy(userID)).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return &MentalHealthSummary{Logs: logs, AvgMood: AverageMood(logs)}, nil
}

// AverageMood returns the mean mood score rounded to one decimal, 0 for an
// empty slice.
func AverageMood(logs []models.MentalHealthLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	var sum int
	for _, l := range logs {
		sum += l.MoodScore
	}
	return math.Round(float64(sum)/float64(len(logs))*10) / 10
}

func (s *RecordService) CreateMentalHealthLog(userID uuid.UUID, req *dto.CreateMentalHealthLogRequest, ip string) (*models.MentalHealthLog, error) {
	log := models.MentalHealthLog{
		ID:          uuid.New(),
		UserID:      userID,
		MoodScore:   req.MoodScore,
		StressLevel: req.StressLevel,
		SleepHours:  req.SleepHours,
		Notes:       req.Notes,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}

	s.activity.Record(userID, models.ActionMentalHealthLog, "Logged mental health check-in", ip)
	return &log, nil
}

func (s *RecordService) ListPrescriptions(userID uuid.UUID) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := s.db.Scopes(auth.OwnedBy(userID)).Order("created_at DESC").Find(&prescriptions).Error
	return prescriptions, err
}

func (s *RecordService) CreatePrescription(userID uuid.UUID, req *dto.CreatePrescriptionRequest, ip string) (*models.Prescription, error) {
	date, err := parseDate(req.PrescriptionDate)
	if err != nil {
		return nil, err
	}
	followUp, err := parseOptionalDate(req.FollowUpDate)
	if err != nil {
		return nil, err
	}

	prescription := models.Prescription{
		ID:               uuid.New(),
		UserID:           userID,
		DoctorName:       req.DoctorName,
		HospitalName:     req.HospitalName,
		Diagnosis:        req.Diagnosis,
		PrescriptionDate: date,
		FollowUpDate:     followUp,
		Notes:            req.Notes,
	}
	if err := s.db.Create(&prescription).Error; err != nil {
		return nil, err
	}

	s.activity.Record(userID, models.ActionPrescriptionAdded, "Added prescription from "+req.DoctorName, ip)
	return &prescription, nil
}

func (s *RecordService) ListLifestyleLogs(userID uuid.UUID) ([]models.LifestyleLog, error) {
	var logs []models.LifestyleLog
	err := s.db.Scopes(auth.OwnedBy(userID)).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&logs).Error
	return logs, err
}

func (s *RecordService) CreateLifestyleLog(userID uuid.UUID, req *dto.CreateLifestyleLogRequest, ip string) (*models.LifestyleLog, error) {
	log := models.LifestyleLog{
		ID:              uuid.New(),
		UserID:          userID,
		Steps:           req.Steps,
		ExerciseMinutes: req.ExerciseMinutes,
		WaterGlasses:    req.WaterGlasses,
		SleepHours:      req.SleepHours,
		Calories:        req.Calories,
		Notes:           req.Notes,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}

	s.activity.Record(userID, models.ActionLifestyleLog, "Logged lifestyle entry", ip)
	return &log, nil
}

func (s *RecordService) ListInsurancePolicies(userID uuid.UUID) ([]models.InsurancePolicy, int64, error) {
	var policies []models.InsurancePolicy
	if err := s.db.Scopes(auth.OwnedBy(userID)).Order("created_at DESC").Find(&policies).Error; err != nil {
		return nil, 0, err
	}

	var active int64
	for _, p := range policies {
		if p.IsActive {
			active++
		}
	}
	return policies, active, nil
}

func (s *RecordService) CreateInsurancePolicy(userID uuid.UUID, req *dto.CreateInsurancePolicyRequest, ip string) (*models.InsurancePolicy, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	policy := models.InsurancePolicy{
		ID:             uuid.New(),
		UserID:         userID,
		ProviderName:   req.ProviderName,
		PolicyNumber:   req.PolicyNumber,
		PolicyType:     req.PolicyType,
		CoverageAmount: req.CoverageAmount,
		StartDate:      start,
		EndDate:        end,
		IsActive:       true,
	}
	if err := s.db.Create(&policy).Error; err != nil {
		return nil, err
	}

	s.activity.Record(userID, models.ActionInsuranceAdded, "Added insurance policy: "+req.ProviderName, ip)
	return &policy, nil
}

// PastRecords combines the user's vitals history and prescriptions.
type PastRecords struct {
	HealthRecords []models.HealthRecord `json:"health_records"`
	Prescriptions []models.Prescription `json:"prescriptions"`
}

func (s *RecordService) GetPastRecords(userID uuid.UUID) (*PastRecords, error) {
	var records []models.HealthRecord
	if err := s.db.Scopes(auth.OwnedBy(userID)).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	var prescriptions []models.Prescription
	if err := s.db.Scopes(auth.OwnedBy(userID)).Order("created_at DESC").Find(&prescriptions).Error; err != nil {
		return nil, err
	}

	return &PastRecords{HealthRecords: records, Prescriptions: prescriptions}, nil
}

func (s *RecordService) GetProfile(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// UpdateProfile applies a partial update; absent fields keep prior values.
func (s *RecordService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest, ip string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	applyIfSet(&user.FirstName, req.FirstName)
	applyIfSet(&user.LastName, req.LastName)
	applyIfSet(&user.Phone, req.Phone)
	applyIfSet(&user.Address, req.Address)
	applyIfSet(&user.City, req.City)
	applyIfSet(&user.BloodGroup, req.BloodGroup)
	applyIfSet(&user.EmergencyContact, req.EmergencyContact)
	applyIfSet(&user.EmergencyPhone, req.EmergencyPhone)

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	s.activity.Record(userID, models.ActionProfileUpdated, "Profile information updated", ip)
	return &user, nil
}

func applyIfSet(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
