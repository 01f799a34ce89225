package models

type UserRole string
type BookingStatus string
type PaymentStatus string
type ServiceType string
type IDVerificationStatus string
type DocumentType string
type MessageType string

const (
	UserRolePetOwner  UserRole = "pet_owner"
	UserRoleCaregiver UserRole = "caregiver"
	UserRoleAdmin     UserRole = "admin"

	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusRejected   BookingStatus = "rejected"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"

	ServiceTypePetBoarding  ServiceType = "pet_boarding"
	ServiceTypeDogWalking   ServiceType = "dog_walking"
	ServiceTypePetGrooming  ServiceType = "pet_grooming"
	ServiceTypeDaycare      ServiceType = "daycare"
	ServiceTypePetSitting   ServiceType = "pet_sitting"
	ServiceTypeVetTransport ServiceType = "vet_transport"
	ServiceTypeCustom       ServiceType = "custom"

	IDVerificationNotSubmitted IDVerificationStatus = "not_submitted"
	IDVerificationPending      IDVerificationStatus = "pending"
	IDVerificationApproved     IDVerificationStatus = "approved"
	IDVerificationRejected     IDVerificationStatus = "rejected"

	DocumentTypeNRIC     DocumentType = "nric"
	DocumentTypePassport DocumentType = "passport"

	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeDocument MessageType = "document"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusRejected,
		BookingStatusInProgress, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether a booking can no longer change state.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected:
		return true
	}
	return false
}
