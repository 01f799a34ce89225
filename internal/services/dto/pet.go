package dto

import (
	"time"

	"petbnb_backend/internal/models"
)

type CreatePetRequest struct {
	Name               string                 `json:"name" validate:"required"`
	Species            string                 `json:"species" validate:"required"`
	Breed              string                 `json:"breed"`
	Age                int                    `json:"age" validate:"min=0,max=50"`
	Weight             float64                `json:"weight" validate:"min=0"`
	Gender             string                 `json:"gender"`
	Description        string                 `json:"description"`
	MedicalInfo        map[string]interface{} `json:"medical_info"`
	BehavioralNotes    map[string]interface{} `json:"behavioral_notes"`
	EmergencyContact   map[string]interface{} `json:"emergency_contact"`
	VaccinationRecords map[string]interface{} `json:"vaccination_records"`
	SpecialNeeds       map[string]interface{} `json:"special_needs"`
}

type UpdatePetRequest struct {
	Name               *string                `json:"name"`
	Species            *string                `json:"species"`
	Breed              *string                `json:"breed"`
	Age                *int                   `json:"age" validate:"omitempty,min=0,max=50"`
	Weight             *float64               `json:"weight" validate:"omitempty,min=0"`
	Gender             *string                `json:"gender"`
	Description        *string                `json:"description"`
	MedicalInfo        map[string]interface{} `json:"medical_info"`
	BehavioralNotes    map[string]interface{} `json:"behavioral_notes"`
	EmergencyContact   map[string]interface{} `json:"emergency_contact"`
	VaccinationRecords map[string]interface{} `json:"vaccination_records"`
	SpecialNeeds       map[string]interface{} `json:"special_needs"`
}

// PetMedicalHistoryResponse bundles the medical JSONB sections.
type PetMedicalHistoryResponse struct {
	PetID              string                 `json:"pet_id"`
	PetName            string                 `json:"pet_name"`
	MedicalInfo        map[string]interface{} `json:"medical_info"`
	VaccinationRecords map[string]interface{} `json:"vaccination_records"`
	SpecialNeeds       map[string]interface{} `json:"special_needs"`
	EmergencyContact   map[string]interface{} `json:"emergency_contact"`
}

type PetStatsResponse struct {
	PetID             string     `json:"pet_id"`
	PetName           string     `json:"pet_name"`
	TotalBookings     int        `json:"total_bookings"`
	CompletedBookings int        `json:"completed_bookings"`
	UpcomingBookings  int        `json:"upcoming_bookings"`
	TotalSpent        float64    `json:"total_spent"`
	LastBookingDate   *time.Time `json:"last_booking_date,omitempty"`
}

type PetBookingsResponse struct {
	PetID    string           `json:"pet_id"`
	Bookings []models.Booking `json:"bookings"`
}
