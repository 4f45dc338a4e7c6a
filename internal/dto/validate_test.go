package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		Username:        "alice",
		Email:           "alice@x.com",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
		FirstName:       "Alice",
		LastName:        "Smith",
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Run("valid input passes", func(t *testing.T) {
		req := validRegister()
		assert.True(t, req.Validate().Ok())
	})

	t.Run("password mismatch rejected", func(t *testing.T) {
		req := validRegister()
		req.ConfirmPassword = "different-pass"
		errs := req.Validate()
		assert.False(t, errs.Ok())
		assert.Equal(t, "confirm_password", errs[0].Field)
	})

	t.Run("short password rejected", func(t *testing.T) {
		req := validRegister()
		req.Password = "short"
		req.ConfirmPassword = "short"
		errs := req.Validate()
		assert.False(t, errs.Ok())
		assert.Equal(t, "password", errs[0].Field)
	})

	t.Run("missing username and email both reported", func(t *testing.T) {
		req := validRegister()
		req.Username = ""
		req.Email = "   "
		errs := req.Validate()
		assert.Len(t, errs, 2)
	})
}

func TestRegisterProviderRequestValidate(t *testing.T) {
	req := RegisterProviderRequest{
		RegisterRequest: validRegister(),
		BusinessName:    "City Clinic",
		ProviderType:    "clinic",
	}
	assert.True(t, req.Validate().Ok())

	req.BusinessName = ""
	errs := req.Validate()
	assert.False(t, errs.Ok())
	assert.Equal(t, "business_name", errs[0].Field)
}

func TestCreateHealthRecordRequestValidate(t *testing.T) {
	empty := CreateHealthRecordRequest{}
	assert.False(t, empty.Validate().Ok())

	hr := 72
	partial := CreateHealthRecordRequest{HeartRate: &hr}
	assert.True(t, partial.Validate().Ok())

	notesOnly := CreateHealthRecordRequest{Notes: "felt dizzy"}
	assert.True(t, notesOnly.Validate().Ok())
}

func TestCreateMentalHealthLogRequestValidate(t *testing.T) {
	assert.True(t, (&CreateMentalHealthLogRequest{MoodScore: 7}).Validate().Ok())
	assert.False(t, (&CreateMentalHealthLogRequest{MoodScore: 0}).Validate().Ok())
	assert.False(t, (&CreateMentalHealthLogRequest{MoodScore: 11}).Validate().Ok())
	assert.False(t, (&CreateMentalHealthLogRequest{MoodScore: 5, StressLevel: 12}).Validate().Ok())
}

func TestUpsertSettingRequestValidate(t *testing.T) {
	assert.True(t, (&UpsertSettingRequest{Key: "max_upload", Value: "10"}).Validate().Ok())
	assert.False(t, (&UpsertSettingRequest{Key: "", Value: "10"}).Validate().Ok())
	assert.False(t, (&UpsertSettingRequest{Key: "max_upload", Value: ""}).Validate().Ok())
	assert.False(t, (&UpsertSettingRequest{Key: " ", Value: " "}).Validate().Ok())
}
