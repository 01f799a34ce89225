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

func TestReviewFlowAndRatingRecompute(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	_, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	first := helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusCompleted, time.Now().Add(-72*time.Hour))
	second := helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusCompleted, time.Now().Add(-48*time.Hour))

	res, body := ts.SendRequest(t, http.MethodPost, "/api/reviews", ownerToken, map[string]interface{}{
		"booking_id": first.ID,
		"rating":     5,
		"comment":    "Biscuit came back happy and tired.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/reviews", ownerToken, map[string]interface{}{
		"booking_id": second.ID,
		"rating":     4,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// Mean of 5 and 4, rounded to one decimal.
	var profile models.CaregiverProfile
	require.NoError(t, ts.DB.Where("user_id = ?", caregiver.ID).First(&profile).Error)
	assert.InDelta(t, 4.5, profile.Rating, 0.001)
	assert.Equal(t, 2, profile.TotalReviews)

	// Public listing of the caregiver's reviews.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/reviews/caregiver/"+caregiver.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var reviews []struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &reviews))
	assert.Len(t, reviews, 2)
}

func TestReviewRejectsDuplicates(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	_, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	booking := helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusCompleted, time.Now().Add(-24*time.Hour))

	payload := map[string]interface{}{"booking_id": booking.ID, "rating": 5}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/reviews", ownerToken, payload)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/reviews", ownerToken, payload)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestReviewRequiresCompletedBooking(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	strangerToken, _ := helpers.CreateAndLoginOwner(t, ts)
	_, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	pending := helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusPending, time.Now().Add(24*time.Hour))
	completed := helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusCompleted, time.Now().Add(-24*time.Hour))

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/reviews", ownerToken, map[string]interface{}{
		"booking_id": pending.ID,
		"rating":     3,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Non-participants cannot review at all.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/reviews", strangerToken, map[string]interface{}{
		"booking_id": completed.ID,
		"rating":     3,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
