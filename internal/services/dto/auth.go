package dto

import (
	"petbnb_backend/internal/models"
)

type RegisterRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=8"`
	FirstName string          `json:"first_name" validate:"required"`
	LastName  string          `json:"last_name" validate:"required"`
	Phone     string          `json:"phone"`
	Role      models.UserRole `json:"role" validate:"required,is-user-role"`
	Address   string          `json:"address"`
}

// UpdateProfileRequest updates the authenticated user's profile.
// When an address is given without coordinates the server geocodes it.
type UpdateProfileRequest struct {
	FirstName       *string  `json:"first_name"`
	LastName        *string  `json:"last_name"`
	Phone           *string  `json:"phone"`
	Address         *string  `json:"address"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	ProfileImageURL *string  `json:"profile_image_url" validate:"omitempty,url"`

	// Caregiver profile fields, ignored for pet owners.
	Bio             *string  `json:"bio"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,min=0,max=80"`
	HourlyRate      *float64 `json:"hourly_rate" validate:"omitempty,min=0"`
	IsAvailable     *bool    `json:"is_available"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// OAuthSessionRequest is empty on purpose, the opaque session id travels
// in the X-Session-ID header.
type OAuthSessionRequest struct{}

// AuthResponse carries the bearer token and the public user view.
type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *UserResponse `json:"user"`
}

type UserResponse struct {
	ID              string                   `json:"id"`
	Email           string                   `json:"email"`
	FirstName       string                   `json:"first_name"`
	LastName        string                   `json:"last_name"`
	Phone           string                   `json:"phone,omitempty"`
	Role            models.UserRole          `json:"role"`
	ProfileImageURL string                   `json:"profile_image_url,omitempty"`
	Address         string                   `json:"address,omitempty"`
	Latitude        *float64                 `json:"latitude,omitempty"`
	Longitude       *float64                 `json:"longitude,omitempty"`
	EmailVerified   bool                     `json:"email_verified"`
	Profile         *models.CaregiverProfile `json:"caregiver_profile,omitempty"`
}

// VerificationStatusResponse reports the capability gates for the
// authenticated user.
type VerificationStatusResponse struct {
	EmailVerified          bool                        `json:"email_verified"`
	IDVerificationStatus   models.IDVerificationStatus `json:"id_verification_status"`
	IDVerificationRequired bool                        `json:"id_verification_required"`
	CanCreateBookings      bool                        `json:"can_create_bookings"`
	CanCreateServices      bool                        `json:"can_create_services"`
}

// OAuthSessionData is the payload returned by the Emergent identity
// provider for a session id.
type OAuthSessionData struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Picture   string `json:"picture"`
	SessionID string `json:"session_token"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Phone:           user.Phone,
		Role:            user.Role,
		ProfileImageURL: user.ProfileImageURL,
		Address:         user.Address,
		Latitude:        user.Latitude,
		Longitude:       user.Longitude,
		EmailVerified:   user.EmailVerified,
		Profile:         user.CaregiverProfile,
	}
}
