package validator

import (
	"log"

	"petbnb_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum rules backed by statuses.go.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Startup error, the application must not run without its rules.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-service-type", validateServiceType)
	mustRegister("is-booking-status", validateBookingStatus)
	mustRegister("is-document-type", validateDocumentType)
	mustRegister("is-message-type", validateMessageType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is for 'required' to catch
	}

	switch models.UserRole(value) {
	case models.UserRolePetOwner, models.UserRoleCaregiver:
		return true
	default:
		// admin accounts are seeded, never registered
		return false
	}
}

func validateServiceType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ServiceType(value) {
	case models.ServiceTypePetBoarding, models.ServiceTypeDogWalking, models.ServiceTypePetGrooming,
		models.ServiceTypeDaycare, models.ServiceTypePetSitting, models.ServiceTypeVetTransport,
		models.ServiceTypeCustom:
		return true
	default:
		return false
	}
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.BookingStatus(value) {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusRejected,
		models.BookingStatusInProgress, models.BookingStatusCompleted, models.BookingStatusCancelled:
		return true
	default:
		return false
	}
}

func validateDocumentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.DocumentType(value) {
	case models.DocumentTypeNRIC, models.DocumentTypePassport:
		return true
	default:
		return false
	}
}

func validateMessageType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.MessageType(value) {
	case models.MessageTypeText, models.MessageTypeImage, models.MessageTypeDocument:
		return true
	default:
		return false
	}
}
