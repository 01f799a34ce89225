package models

import "time"

type VerificationToken struct {
	BaseModel
	UserID     string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Email      string     `gorm:"not null" json:"email"`
	Token      string     `gorm:"not null;uniqueIndex" json:"-"`
	Type       string     `gorm:"type:varchar(20);default:'email'" json:"type"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	IsUsed     bool       `gorm:"default:false" json:"is_used"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

func (t *VerificationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

type IDVerification struct {
	BaseModel
	UserID        string               `gorm:"type:uuid;not null;index" json:"user_id"`
	DocumentType  DocumentType         `gorm:"type:varchar(20);not null" json:"document_type"`
	IDDocumentURL string               `gorm:"not null" json:"id_document_url"`
	SelfieURL     string               `gorm:"not null" json:"selfie_url"`
	Status        IDVerificationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AdminNotes    string               `json:"admin_notes,omitempty"`
	VerifiedAt    *time.Time           `json:"verified_at,omitempty"`
	VerifiedBy    *string              `gorm:"type:uuid" json:"verified_by,omitempty"`
}
