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

func TestUserStats(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	_, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusCompleted, time.Now().Add(-72*time.Hour))
	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusCompleted, time.Now().Add(-48*time.Hour))
	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusCancelled, time.Now().Add(-24*time.Hour))
	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusConfirmed, time.Now().Add(24*time.Hour))

	res, body := ts.SendRequest(t, http.MethodGet, "/api/stats/user", ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats struct {
		TotalBookings     int64   `json:"total_bookings"`
		CompletedBookings int64   `json:"completed_bookings"`
		UpcomingBookings  int64   `json:"upcoming_bookings"`
		CancelledBookings int64   `json:"cancelled_bookings"`
		TotalSpent        float64 `json:"total_spent"`
		TotalPets         int     `json:"total_pets"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, int64(4), stats.TotalBookings)
	assert.Equal(t, int64(2), stats.CompletedBookings)
	assert.Equal(t, int64(1), stats.UpcomingBookings)
	assert.Equal(t, int64(1), stats.CancelledBookings)
	assert.InDelta(t, 100.0, stats.TotalSpent, 0.001)
	assert.Equal(t, 1, stats.TotalPets)
}

func TestCaregiverStatsAndEarnings(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, owner := helpers.CreateAndLoginOwner(t, ts)
	caregiverToken, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusCompleted, time.Now().Add(-72*time.Hour))
	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusCompleted, time.Now().Add(-48*time.Hour))
	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusPending, time.Now().Add(24*time.Hour))
	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusConfirmed, time.Now().Add(48*time.Hour))

	res, body := ts.SendRequest(t, http.MethodGet, "/api/stats/caregiver", caregiverToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats struct {
		TotalBookings     int64   `json:"total_bookings"`
		CompletedBookings int64   `json:"completed_bookings"`
		PendingBookings   int64   `json:"pending_bookings"`
		ResponseRate      float64 `json:"response_rate"`
		AcceptanceRate    float64 `json:"acceptance_rate"`
		TotalEarnings     float64 `json:"total_earnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, int64(4), stats.TotalBookings)
	assert.Equal(t, int64(2), stats.CompletedBookings)
	assert.Equal(t, int64(1), stats.PendingBookings)

	// Three of four bookings are past pending, and three are accepted.
	assert.InDelta(t, 0.75, stats.ResponseRate, 0.001)
	assert.InDelta(t, 0.75, stats.AcceptanceRate, 0.001)
	assert.InDelta(t, 100.0, stats.TotalEarnings, 0.001)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/stats/caregiver/earnings", caregiverToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var earnings struct {
		TotalEarnings  float64 `json:"total_earnings"`
		PlatformFee    float64 `json:"platform_fee"`
		NetEarnings    float64 `json:"net_earnings"`
		CommissionRate float64 `json:"commission_rate"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &earnings))
	assert.InDelta(t, 100.0, earnings.TotalEarnings, 0.001)
	assert.InDelta(t, 10.0, earnings.PlatformFee, 0.001)
	assert.InDelta(t, 90.0, earnings.NetEarnings, 0.001)
	assert.InDelta(t, 0.10, earnings.CommissionRate, 0.001)
}

func TestBookingStatsGroupsByStatus(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	_, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusInProgress, time.Now().Add(-time.Hour))
	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusPending, time.Now().Add(24*time.Hour))
	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusPending, time.Now().Add(48*time.Hour))

	res, body := ts.SendRequest(t, http.MethodGet, "/api/stats/bookings", ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats struct {
		Total      int64            `json:"total"`
		ByStatus   map[string]int64 `json:"by_status"`
		InProgress int64            `json:"in_progress"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.ByStatus[string(models.BookingStatusPending)])
	assert.Equal(t, int64(1), stats.InProgress)
}
