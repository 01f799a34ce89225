package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"petbnb_backend/internal/models"
	"petbnb_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("register_%d@test.com", time.Now().UnixNano())

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"first_name": "Priya",
		"last_name":  "Tan",
		"role":       "pet_owner",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var authResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			Email         string `json:"email"`
			EmailVerified bool   `json:"email_verified"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &authResp))
	assert.NotEmpty(t, authResp.AccessToken)
	assert.Equal(t, "bearer", authResp.TokenType)
	assert.Equal(t, email, authResp.User.Email)
	assert.False(t, authResp.User.EmailVerified, "new accounts start unverified")

	// Registering the same email again fails.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"first_name": "Priya",
		"last_name":  "Tan",
		"role":       "pet_owner",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Login with the right password works, with the wrong one it does not.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":      "sneaky@test.com",
		"password":   "password123",
		"first_name": "Sneaky",
		"last_name":  "Admin",
		"role":       "admin",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestEmailVerificationFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("verify_%d@test.com", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"first_name": "Mei",
		"last_name":  "Lim",
		"role":       "caregiver",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var tokenRow models.VerificationToken
	require.NoError(t, ts.DB.Where("email = ?", email).First(&tokenRow).Error)
	require.False(t, tokenRow.IsUsed)

	// Consume the token.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/verify-email", "", map[string]interface{}{
		"token": tokenRow.Token,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", email).First(&user).Error)
	assert.True(t, user.EmailVerified)

	// A second use of the same token is rejected.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/verify-email", "", map[string]interface{}{
		"token": tokenRow.Token,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestExpiredVerificationToken(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	email := fmt.Sprintf("expired_%d@test.com", time.Now().UnixNano())
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"first_name": "Late",
		"last_name":  "Comer",
		"role":       "pet_owner",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var tokenRow models.VerificationToken
	require.NoError(t, ts.DB.Where("email = ?", email).First(&tokenRow).Error)

	// Age the token past its window.
	require.NoError(t, ts.DB.Model(&tokenRow).Update("expires_at", time.Now().Add(-time.Hour)).Error)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/verify-email", "", map[string]interface{}{
		"token": tokenRow.Token,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", email).First(&user).Error)
	assert.False(t, user.EmailVerified)
}

func TestGetCurrentUser(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginOwner(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &me))
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, user.Email, me.Email)

	// No token, no access.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestVerificationStatusGates(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginCaregiver(t, ts)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/auth/verification-status", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var status struct {
		EmailVerified          bool   `json:"email_verified"`
		IDVerificationStatus   string `json:"id_verification_status"`
		IDVerificationRequired bool   `json:"id_verification_required"`
		CanCreateBookings      bool   `json:"can_create_bookings"`
		CanCreateServices      bool   `json:"can_create_services"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.True(t, status.EmailVerified)
	assert.True(t, status.IDVerificationRequired)
	assert.Equal(t, "approved", status.IDVerificationStatus)
	assert.True(t, status.CanCreateBookings)
	assert.True(t, status.CanCreateServices)

	// Flip email verification off and the gates close.
	require.NoError(t, ts.DB.Model(user).Update("email_verified", false).Error)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/auth/verification-status", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.False(t, status.CanCreateBookings)
	assert.False(t, status.CanCreateServices)
}

func TestRegisterCaregiverRollsBackOnProfileFailure(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	require.NoError(t, ts.DB.Exec(`
		CREATE OR REPLACE FUNCTION block_profile_insert() RETURNS trigger AS $$
		BEGIN
			RAISE EXCEPTION 'profile insert blocked';
		END;
		$$ LANGUAGE plpgsql`).Error)
	require.NoError(t, ts.DB.Exec(`
		CREATE TRIGGER block_profile_insert BEFORE INSERT ON caregiver_profiles
		FOR EACH ROW EXECUTE FUNCTION block_profile_insert()`).Error)
	defer func() {
		ts.DB.Exec(`DROP TRIGGER IF EXISTS block_profile_insert ON caregiver_profiles`)
		ts.DB.Exec(`DROP FUNCTION IF EXISTS block_profile_insert`)
	}()

	email := fmt.Sprintf("caregiver_tx_%d@test.com", time.Now().UnixNano())
	payload := map[string]interface{}{
		"email":      email,
		"password":   "password123",
		"first_name": "Mei",
		"last_name":  "Lim",
		"role":       "caregiver",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var userCount int64
	require.NoError(t, ts.DB.Model(&models.User{}).Where("email = ?", email).Count(&userCount).Error)
	assert.Zero(t, userCount, "failed registration must not leave a user row")

	// With the failure gone the same registration goes through whole.
	require.NoError(t, ts.DB.Exec(`DROP TRIGGER IF EXISTS block_profile_insert ON caregiver_profiles`).Error)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var profileCount int64
	require.NoError(t, ts.DB.Model(&models.CaregiverProfile{}).
		Joins("JOIN users ON users.id = caregiver_profiles.user_id").
		Where("users.email = ?", email).
		Count(&profileCount).Error)
	assert.EqualValues(t, 1, profileCount)
}
