package dto

import (
	"time"

	"petbnb_backend/internal/models"
)

type CreateBookingRequest struct {
	ServiceID           string    `json:"service_id" validate:"required,uuid"`
	PetID               string    `json:"pet_id" validate:"required,uuid"`
	StartDatetime       time.Time `json:"start_datetime" validate:"required"`
	EndDatetime         time.Time `json:"end_datetime" validate:"required,gtfield=StartDatetime"`
	SpecialRequirements string    `json:"special_requirements"`
}

type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" validate:"required,is-booking-status"`
}

type CompleteBookingRequest struct {
	ServiceNotes     string   `json:"service_notes"`
	CompletionPhotos []string `json:"completion_photos"`
}

// TimelineEvent is one entry of a booking's status history view.
type TimelineEvent struct {
	Status      string    `json:"status"`
	Label       string    `json:"label"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description,omitempty"`
}

type BookingTimelineResponse struct {
	BookingID string          `json:"booking_id"`
	Status    string          `json:"current_status"`
	Events    []TimelineEvent `json:"events"`
}

// BookingDetailsResponse joins the booking with its related entities.
type BookingDetailsResponse struct {
	Booking   *models.Booking          `json:"booking"`
	Pet       *models.Pet              `json:"pet,omitempty"`
	Service   *models.CaregiverService `json:"service,omitempty"`
	PetOwner  *UserResponse            `json:"pet_owner,omitempty"`
	Caregiver *UserResponse            `json:"caregiver,omitempty"`
}
