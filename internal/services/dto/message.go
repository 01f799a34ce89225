package dto

import "petbnb_backend/internal/models"

type SendMessageRequest struct {
	BookingID     string             `json:"booking_id" validate:"required,uuid"`
	Content       string             `json:"content" validate:"required"`
	MessageType   models.MessageType `json:"message_type" validate:"omitempty,is-message-type"`
	AttachmentURL string             `json:"attachment_url" validate:"omitempty,url"`
}
