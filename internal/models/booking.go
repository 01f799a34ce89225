package models

import (
	"time"

	"gorm.io/datatypes"
)

// Booking.CaregiverID references the caregiver's user id, not the
// caregiver profile id, so transition authorization compares it
// directly against the authenticated user.
type Booking struct {
	BaseModel
	PetOwnerID          string         `gorm:"type:uuid;not null;index" json:"pet_owner_id"`
	CaregiverID         string         `gorm:"type:uuid;not null;index" json:"caregiver_id"`
	PetID               string         `gorm:"type:uuid;not null;index" json:"pet_id"`
	ServiceID           string         `gorm:"type:uuid;not null" json:"service_id"`
	StartDatetime       time.Time      `gorm:"not null" json:"start_datetime"`
	EndDatetime         time.Time      `gorm:"not null" json:"end_datetime"`
	BookingStatus       BookingStatus  `gorm:"type:varchar(20);default:'pending'" json:"booking_status"`
	PaymentStatus       PaymentStatus  `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	TotalAmount         float64        `gorm:"not null" json:"total_amount"`
	SpecialRequirements string         `json:"special_requirements,omitempty"`
	ServiceNotes        string         `json:"service_notes,omitempty"`
	CompletionPhotos    datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"completion_photos"`

	// Relations
	PetOwner  *User             `gorm:"foreignKey:PetOwnerID" json:"-"`
	Caregiver *User             `gorm:"foreignKey:CaregiverID" json:"-"`
	Pet       *Pet              `gorm:"foreignKey:PetID" json:"-"`
	Service   *CaregiverService `gorm:"foreignKey:ServiceID" json:"-"`
}

// IsParticipant reports whether userID is the owner or caregiver side.
func (b *Booking) IsParticipant(userID string) bool {
	return b.PetOwnerID == userID || b.CaregiverID == userID
}
