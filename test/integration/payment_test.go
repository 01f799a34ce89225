package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"petbnb_backend/internal/models"
	"petbnb_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentEndpointsAreParticipantScoped(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	strangerToken, _ := helpers.CreateAndLoginOwner(t, ts)
	_, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	booking := helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusConfirmed, time.Now().Add(24*time.Hour))

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/payments/create-intent", strangerToken, map[string]interface{}{
		"booking_id": booking.ID,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/payments/booking/"+booking.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Participants can list transactions even when none exist yet.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/payments/booking/"+booking.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var transactions []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &transactions))
	assert.Empty(t, transactions)
}
