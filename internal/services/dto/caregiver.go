package dto

import (
	"time"

	"petbnb_backend/internal/models"
)

type CreateServiceRequest struct {
	ServiceType       models.ServiceType `json:"service_type" validate:"required,is-service-type"`
	Title             string             `json:"title" validate:"required"`
	Description       string             `json:"description"`
	BasePrice         float64            `json:"base_price" validate:"required,gt=0"`
	DurationMinutes   int                `json:"duration_minutes" validate:"min=0"`
	MaxPets           int                `json:"max_pets" validate:"omitempty,min=1"`
	ServiceAreaRadius float64            `json:"service_area_radius" validate:"min=0"`
}

type UpdateServiceRequest struct {
	ServiceType       *models.ServiceType `json:"service_type" validate:"omitempty,is-service-type"`
	Title             *string             `json:"title"`
	Description       *string             `json:"description"`
	BasePrice         *float64            `json:"base_price" validate:"omitempty,gt=0"`
	DurationMinutes   *int                `json:"duration_minutes" validate:"omitempty,min=0"`
	MaxPets           *int                `json:"max_pets" validate:"omitempty,min=1"`
	ServiceAreaRadius *float64            `json:"service_area_radius" validate:"omitempty,min=0"`
	IsActive          *bool               `json:"is_active"`
}

type SubmitIDVerificationRequest struct {
	DocumentType  models.DocumentType `json:"document_type" validate:"required,is-document-type"`
	IDDocumentURL string              `json:"id_document_url" validate:"required,url"`
	SelfieURL     string              `json:"selfie_url" validate:"required,url"`
}

// ReviewIDVerificationRequest is the admin approve/reject decision.
type ReviewIDVerificationRequest struct {
	Approve    bool   `json:"approve"`
	AdminNotes string `json:"admin_notes"`
}

type IDVerificationStatusResponse struct {
	Status      models.IDVerificationStatus `json:"status"`
	SubmittedAt *time.Time                  `json:"submitted_at,omitempty"`
	VerifiedAt  *time.Time                  `json:"verified_at,omitempty"`
	AdminNotes  string                      `json:"admin_notes,omitempty"`
}
