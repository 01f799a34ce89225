package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"petbnb_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the raw password left in
// PasswordHash by the caller. The user starts email-verified so tests
// do not have to walk the verification flow each time.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	if user.PasswordHash != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err)
		user.PasswordHash = string(hashed)
	}

	user.IsActive = true
	user.EmailVerified = true

	require.NoError(t, db.Create(user).Error)
}

// CreateAndLoginUser creates a verified user and logs in through the
// API, returning the bearer token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: password,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	if role == models.UserRoleCaregiver {
		profile := &models.CaregiverProfile{
			UserID:               user.ID,
			IDVerificationStatus: models.IDVerificationApproved,
			IsAvailable:          true,
		}
		require.NoError(t, ts.DB.Create(profile).Error)
		user.CaregiverProfile = profile
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: %s", body)

	var loginResponse struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	require.NotEmpty(t, loginResponse.AccessToken)

	return loginResponse.AccessToken, user
}

// CreateAndLoginOwner creates a pet owner with a unique email.
func CreateAndLoginOwner(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("owner_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, email, "password123", models.UserRolePetOwner)
}

// CreateAndLoginCaregiver creates an ID-approved caregiver with a
// unique email and coordinates in central Singapore.
func CreateAndLoginCaregiver(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()
	email := fmt.Sprintf("caregiver_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, email, "password123", models.UserRoleCaregiver)

	lat, lng := 1.3521, 103.8198
	require.NoError(t, ts.DB.Model(user).Updates(map[string]interface{}{
		"latitude":  lat,
		"longitude": lng,
	}).Error)
	user.Latitude = &lat
	user.Longitude = &lng

	return token, user
}

// CreatePet inserts an active pet for the owner.
func CreatePet(t *testing.T, db *gorm.DB, ownerID string) *models.Pet {
	t.Helper()

	pet := &models.Pet{
		OwnerID:  ownerID,
		Name:     "Biscuit",
		Species:  "dog",
		Breed:    "corgi",
		Age:      3,
		Weight:   12.5,
		IsActive: true,
	}
	require.NoError(t, db.Create(pet).Error)
	return pet
}

// CreateService inserts an active caregiver service.
func CreateService(t *testing.T, db *gorm.DB, caregiverID string) *models.CaregiverService {
	t.Helper()

	service := &models.CaregiverService{
		CaregiverID:       caregiverID,
		ServiceType:       models.ServiceTypeDogWalking,
		Title:             "Neighbourhood dog walks",
		BasePrice:         25,
		DurationMinutes:   60,
		MaxPets:           2,
		ServiceAreaRadius: 10,
		IsActive:          true,
	}
	require.NoError(t, db.Create(service).Error)
	return service
}

// CreateBooking inserts a booking directly, bypassing the API.
func CreateBooking(t *testing.T, db *gorm.DB, ownerID, caregiverID, petID, serviceID string, status models.BookingStatus, start time.Time) *models.Booking {
	t.Helper()

	booking := &models.Booking{
		PetOwnerID:    ownerID,
		CaregiverID:   caregiverID,
		PetID:         petID,
		ServiceID:     serviceID,
		StartDatetime: start,
		EndDatetime:   start.Add(2 * time.Hour),
		BookingStatus: status,
		PaymentStatus: models.PaymentStatusPending,
		TotalAmount:   50,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}
