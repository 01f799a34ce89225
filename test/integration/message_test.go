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

func TestBookingMessaging(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	caregiverToken, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	booking := helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusConfirmed, time.Now().Add(24*time.Hour))

	res, body := ts.SendRequest(t, http.MethodPost, "/api/messages", ownerToken, map[string]interface{}{
		"booking_id": booking.ID,
		"content":    "Biscuit gets anxious around big dogs, heads up!",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var sent models.Message
	require.NoError(t, json.Unmarshal([]byte(body), &sent))
	assert.Equal(t, owner.ID, sent.SenderID)
	assert.Equal(t, caregiver.ID, sent.ReceiverID)
	assert.Equal(t, models.MessageTypeText, sent.MessageType)
	assert.False(t, sent.IsRead)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/messages", caregiverToken, map[string]interface{}{
		"booking_id": booking.ID,
		"content":    "Noted, we will stick to the quiet route.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// Listing as the owner returns the conversation oldest-first and
	// marks messages addressed to the owner as read.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/messages/"+booking.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var conversation []models.Message
	require.NoError(t, json.Unmarshal([]byte(body), &conversation))
	require.Len(t, conversation, 2)
	assert.Equal(t, owner.ID, conversation[0].SenderID)
	assert.Equal(t, caregiver.ID, conversation[1].SenderID)

	var unread int64
	require.NoError(t, ts.DB.Model(&models.Message{}).
		Where("booking_id = ? AND receiver_id = ? AND is_read = false", booking.ID, owner.ID).
		Count(&unread).Error)
	assert.Zero(t, unread)
}

func TestMessagingRequiresParticipant(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, owner := helpers.CreateAndLoginOwner(t, ts)
	strangerToken, _ := helpers.CreateAndLoginOwner(t, ts)
	_, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	booking := helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusConfirmed, time.Now().Add(24*time.Hour))

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/messages", strangerToken, map[string]interface{}{
		"booking_id": booking.ID,
		"content":    "Hello?",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/messages/"+booking.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
