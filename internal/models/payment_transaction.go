package models

import "gorm.io/datatypes"

type PaymentTransaction struct {
	BaseModel
	BookingID       string         `gorm:"type:uuid;not null;index" json:"booking_id"`
	UserID          string         `gorm:"type:uuid;not null;index" json:"user_id"`
	PaymentIntentID string         `gorm:"uniqueIndex" json:"payment_intent_id"`
	Amount          float64        `gorm:"not null" json:"amount"`
	Currency        string         `gorm:"type:varchar(10);default:'sgd'" json:"currency"`
	Status          PaymentStatus  `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Metadata        datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}
