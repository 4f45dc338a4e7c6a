package dto

// UpsertSettingRequest writes one system setting. Key and value must both
// be non-empty; an empty submission is rejected before any store access.
type UpsertSettingRequest struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

func (r *UpsertSettingRequest) Validate() FieldErrors {
	var errs FieldErrors
	errs.require("key", r.Key, "Setting key is required")
	errs.require("value", r.Value, "Setting value is required")
	return errs
}

// ChartData is a bucketed summary serialized as two parallel arrays for
// chart rendering.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// ReportsResponse bundles the three admin report summaries.
type ReportsResponse struct {
	RegistrationsByDay   ChartData `json:"registrations_by_day"`
	HealthRecordsByMonth ChartData `json:"health_records_by_month"`
	UsersByRole          ChartData `json:"users_by_role"`
}

// HealthDataStats is the admin health-data overview totals block.
type HealthDataStats struct {
	TotalRecords       int64 `json:"total_records"`
	TotalMedicines     int64 `json:"total_medicines"`
	TotalPrescriptions int64 `json:"total_prescriptions"`
	TotalPolicies      int64 `json:"total_policies"`
}
