package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: connection refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Internal server error", decoded["message"])
	assert.NotContains(t, string(data), "connection refused")
	assert.NotContains(t, decoded, "HTTPCode")
	assert.NotContains(t, decoded, "Err")
}

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	derived := ErrInvalidBookingTransition.WithDetails(map[string]interface{}{
		"from": "pending",
		"to":   "completed",
	})

	assert.Nil(t, ErrInvalidBookingTransition.Details)
	assert.NotNil(t, derived.Details)
	assert.Equal(t, ErrInvalidBookingTransition.Message, derived.Message)
}

func TestWithErrorDoesNotMutateSentinel(t *testing.T) {
	cause := errors.New("stripe: card declined")
	derived := ErrPaymentProvider.WithError(cause)

	assert.Nil(t, ErrPaymentProvider.Err)
	assert.Equal(t, cause, derived.Err)
}

func TestIsMatchesDerivedCopies(t *testing.T) {
	derived := ErrInvalidBookingTransition.WithDetails("anything")

	assert.True(t, Is(derived, ErrInvalidBookingTransition))
	assert.False(t, Is(derived, ErrBookingNotParticipant))

	wrapped := ErrPaymentProvider.WithError(errors.New("timeout"))
	assert.True(t, Is(wrapped, ErrPaymentProvider))
}

func TestErrorStringIncludesCause(t *testing.T) {
	plain := New(CodeForbidden, "auth", "nope", http.StatusForbidden)
	assert.NotContains(t, plain.Error(), "(")

	wrapped := plain.WithError(errors.New("token mismatch"))
	assert.Contains(t, wrapped.Error(), "token mismatch")
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "must be a valid email"})

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "must be a valid email")
}
