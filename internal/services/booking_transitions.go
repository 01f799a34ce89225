package services

import (
	"time"

	"petbnb_backend/internal/models"
)

// earlyStartWindow is how far before the scheduled start a caregiver
// may move a booking to in_progress.
const earlyStartWindow = 30 * time.Minute

// bookingTransitions is the allowed edge set of the booking lifecycle.
var bookingTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingStatusPending:    {models.BookingStatusConfirmed, models.BookingStatusRejected, models.BookingStatusCancelled},
	models.BookingStatusConfirmed:  {models.BookingStatusInProgress, models.BookingStatusCancelled},
	models.BookingStatusInProgress: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

// caregiverOnlyStatuses are target statuses only the caregiver side may set.
var caregiverOnlyStatuses = map[models.BookingStatus]bool{
	models.BookingStatusConfirmed:  true,
	models.BookingStatusRejected:   true,
	models.BookingStatusInProgress: true,
	models.BookingStatusCompleted:  true,
}

func transitionAllowed(from, to models.BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// canStartService enforces the early-start window: a service may only
// begin within earlyStartWindow of the scheduled start or later.
func canStartService(start, now time.Time) bool {
	return start.Sub(now) <= earlyStartWindow
}
