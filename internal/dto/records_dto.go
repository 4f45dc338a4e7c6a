package dto

// Create-request structs for the patient surface. Dates travel as
// "2006-01-02" strings and are parsed in the service layer.

type CreateMedicineRequest struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	PrescribedBy string `json:"prescribed_by"`
	Notes        string `json:"notes"`
}

func (r *CreateMedicineRequest) Validate() FieldErrors {
	var errs FieldErrors
	errs.require("name", r.Name, "Medicine name is required")
	errs.require("start_date", r.StartDate, "Start date is required")
	return errs
}

type CreateHealthRecordRequest struct {
	BloodPressureSystolic  *int     `json:"blood_pressure_systolic"`
	BloodPressureDiastolic *int     `json:"blood_pressure_diastolic"`
	BloodSugar             *float64 `json:"blood_sugar"`
	Weight                 *float64 `json:"weight"`
	HeartRate              *int     `json:"heart_rate"`
	Temperature            *float64 `json:"temperature"`
	OxygenLevel            *int     `json:"oxygen_level"`
	Notes                  string   `json:"notes"`
}

// Validate accepts any subset of vitals but rejects a fully empty record.
func (r *CreateHealthRecordRequest) Validate() FieldErrors {
	if r.BloodPressureSystolic == nil && r.BloodPressureDiastolic == nil &&
		r.BloodSugar == nil && r.Weight == nil && r.HeartRate == nil &&
		r.Temperature == nil && r.OxygenLevel == nil && r.Notes == "" {
		return FieldErrors{{Field: "record", Message: "At least one measurement is required"}}
	}
	return nil
}

type CreatePrescriptionRequest struct {
	DoctorName       string `json:"doctor_name"`
	HospitalName     string `json:"hospital_name"`
	Diagnosis        string `json:"diagnosis"`
	PrescriptionDate string `json:"prescription_date"`
	FollowUpDate     string `json:"follow_up_date"`
	Notes            string `json:"notes"`
}

func (r *CreatePrescriptionRequest) Validate() FieldErrors {
	var errs FieldErrors
	errs.require("doctor_name", r.DoctorName, "Doctor name is required")
	errs.require("diagnosis", r.Diagnosis, "Diagnosis is required")
	errs.require("prescription_date", r.PrescriptionDate, "Prescription date is required")
	return errs
}

type CreateMentalHealthLogRequest struct {
	MoodScore   int     `json:"mood_score"`
	StressLevel int     `json:"stress_level"`
	SleepHours  float64 `json:"sleep_hours"`
	Notes       string  `json:"notes"`
}

func (r *CreateMentalHealthLogRequest) Validate() FieldErrors {
	var errs FieldErrors
	if r.MoodScore < 1 || r.MoodScore > 10 {
		errs = append(errs, FieldError{Field: "mood_score", Message: "Mood score must be between 1 and 10"})
	}
	if r.StressLevel < 0 || r.StressLevel > 10 {
		errs = append(errs, FieldError{Field: "stress_level", Message: "Stress level must be between 0 and 10"})
	}
	return errs
}

type CreateLifestyleLogRequest struct {
	Steps           int     `json:"steps"`
	ExerciseMinutes int     `json:"exercise_minutes"`
	WaterGlasses    int     `json:"water_glasses"`
	SleepHours      float64 `json:"sleep_hours"`
	Calories        int     `json:"calories"`
	Notes           string  `json:"notes"`
}

func (r *CreateLifestyleLogRequest) Validate() FieldErrors {
	var errs FieldErrors
	if r.Steps < 0 || r.ExerciseMinutes < 0 || r.WaterGlasses < 0 || r.Calories < 0 || r.SleepHours < 0 {
		errs = append(errs, FieldError{Field: "log", Message: "Values cannot be negative"})
	}
	return errs
}

type CreateInsurancePolicyRequest struct {
	ProviderName   string  `json:"provider_name"`
	PolicyNumber   string  `json:"policy_number"`
	PolicyType     string  `json:"policy_type"`
	CoverageAmount float64 `json:"coverage_amount"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
}

func (r *CreateInsurancePolicyRequest) Validate() FieldErrors {
	var errs FieldErrors
	errs.require("provider_name", r.ProviderName, "Provider name is required")
	errs.require("policy_number", r.PolicyNumber, "Policy number is required")
	return errs
}

// UpdateProfileRequest is a partial update: nil fields keep prior values.
type UpdateProfileRequest struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	City             *string `json:"city"`
	BloodGroup       *string `json:"blood_group"`
	EmergencyContact *string `json:"emergency_contact"`
	EmergencyPhone   *string `json:"emergency_phone"`
}
