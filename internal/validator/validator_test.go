package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

type bookingPayload struct {
	ServiceID     string    `json:"service_id" validate:"required,uuid"`
	StartDatetime time.Time `json:"start_datetime" validate:"required"`
	EndDatetime   time.Time `json:"end_datetime" validate:"required,gtfield=StartDatetime"`
}

func TestValidatePassesValidStruct(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:    "user@test.com",
		Password: "password123",
		Role:     "pet_owner",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Email:    "not-an-email",
		Password: "short",
		Role:     "pet_owner",
	})
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.Errors, "email")
	assert.Contains(t, validationErr.Errors, "password")
	assert.NotContains(t, validationErr.Errors, "Email")
}

func TestUserRoleRule(t *testing.T) {
	v := New()

	valid := &registerPayload{Email: "a@b.com", Password: "password123"}

	valid.Role = "caregiver"
	assert.NoError(t, v.Validate(valid))

	valid.Role = "admin"
	err := v.Validate(valid)
	require.Error(t, err)
	validationErr := err.(*ValidationError)
	assert.Equal(t, "Must be a valid user role", validationErr.Errors["role"])
}

func TestEndAfterStartRule(t *testing.T) {
	v := New()

	start := time.Now().Add(24 * time.Hour)
	payload := &bookingPayload{
		ServiceID:     "11111111-1111-1111-1111-111111111111",
		StartDatetime: start,
		EndDatetime:   start.Add(2 * time.Hour),
	}
	assert.NoError(t, v.Validate(payload))

	payload.EndDatetime = start.Add(-time.Hour)
	err := v.Validate(payload)
	require.Error(t, err)
	validationErr := err.(*ValidationError)
	assert.Contains(t, validationErr.Errors, "end_datetime")
}

func TestEnumRules(t *testing.T) {
	v := New()

	type enums struct {
		ServiceType  string `json:"service_type" validate:"omitempty,is-service-type"`
		Status       string `json:"status" validate:"omitempty,is-booking-status"`
		DocumentType string `json:"document_type" validate:"omitempty,is-document-type"`
		MessageType  string `json:"message_type" validate:"omitempty,is-message-type"`
	}

	assert.NoError(t, v.Validate(&enums{}))
	assert.NoError(t, v.Validate(&enums{
		ServiceType:  "dog_walking",
		Status:       "confirmed",
		DocumentType: "nric",
		MessageType:  "text",
	}))

	assert.Error(t, v.Validate(&enums{ServiceType: "cat_juggling"}))
	assert.Error(t, v.Validate(&enums{Status: "paused"}))
	assert.Error(t, v.Validate(&enums{DocumentType: "driving_licence"}))
}
