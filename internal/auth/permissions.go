package auth

import (
	"errors"

	"petbnb_backend/internal/models"
)

// Capability checks derived from account state. Handlers and services
// consult these instead of re-deriving the gating rules inline.

// CanCreateBookings requires a verified email.
func CanCreateBookings(user *models.User) bool {
	return user.EmailVerified
}

// CanCreateServices requires a caregiver with email verified and an
// approved ID verification.
func CanCreateServices(user *models.User, profile *models.CaregiverProfile) bool {
	if user.Role != models.UserRoleCaregiver || !user.EmailVerified {
		return false
	}
	return profile != nil && profile.IDVerificationStatus == models.IDVerificationApproved
}

// CanSubmitIDVerification requires a caregiver with a verified email.
func CanSubmitIDVerification(user *models.User) bool {
	return user.Role == models.UserRoleCaregiver && user.EmailVerified
}

func IsAdmin(claims *Claims) bool {
	return claims.UserType == models.UserRoleAdmin
}

// ValidateRole accepts only the registerable roles.
func ValidateRole(role string) error {
	switch models.UserRole(role) {
	case models.UserRolePetOwner, models.UserRoleCaregiver:
		return nil
	default:
		return errors.New("invalid role")
	}
}
