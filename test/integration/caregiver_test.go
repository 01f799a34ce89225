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

func loginAdmin(t *testing.T, ts *helpers.TestServer) string {
	t.Helper()
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	token, _ := helpers.CreateAndLoginUser(t, ts, email, "password123", models.UserRoleAdmin)
	return token
}

func TestCaregiverServiceCRUD(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginCaregiver(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/caregiver/services", token, map[string]interface{}{
		"service_type": "pet_boarding",
		"title":        "Weekend boarding",
		"base_price":   60,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var service struct {
		ID        string  `json:"id"`
		Title     string  `json:"title"`
		BasePrice float64 `json:"base_price"`
		MaxPets   int     `json:"max_pets"`
		IsActive  bool    `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &service))
	assert.Equal(t, 1, service.MaxPets)
	assert.True(t, service.IsActive)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/caregiver/services/"+service.ID, token, map[string]interface{}{
		"base_price": 75,
		"is_active":  false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &service))
	assert.InDelta(t, 75.0, service.BasePrice, 0.001)
	assert.False(t, service.IsActive)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/caregiver/services", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Len(t, list, 1)
}

func TestServiceCreationRequiresApprovedID(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	require.NoError(t, ts.DB.Model(&models.CaregiverProfile{}).
		Where("user_id = ?", caregiver.ID).
		Update("id_verification_status", models.IDVerificationNotSubmitted).Error)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/caregiver/services", token, map[string]interface{}{
		"service_type": "dog_walking",
		"title":        "Walks",
		"base_price":   20,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestServiceUpdateRequiresOwnership(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	otherToken, _ := helpers.CreateAndLoginCaregiver(t, ts)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/caregiver/services/"+service.ID, otherToken, map[string]interface{}{
		"base_price": 5,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestIDVerificationFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	require.NoError(t, ts.DB.Model(&models.CaregiverProfile{}).
		Where("user_id = ?", caregiver.ID).
		Update("id_verification_status", models.IDVerificationNotSubmitted).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/caregiver/id-verification-status", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var status struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &status))
	assert.Equal(t, string(models.IDVerificationNotSubmitted), status.Status)

	submission := map[string]interface{}{
		"document_type":   string(models.DocumentTypeNRIC),
		"id_document_url": "https://cdn.example.com/docs/nric.jpg",
		"selfie_url":      "https://cdn.example.com/docs/selfie.jpg",
	}

	res, body = ts.SendRequest(t, http.MethodPost, "/api/caregiver/submit-id-verification", token, submission)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var verification models.IDVerification
	require.NoError(t, json.Unmarshal([]byte(body), &verification))
	assert.Equal(t, models.IDVerificationPending, verification.Status)

	// A pending submission blocks another one.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/caregiver/submit-id-verification", token, submission)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Admin approves.
	adminToken := loginAdmin(t, ts)
	res, body = ts.SendRequest(t, http.MethodPut, "/api/admin/id-verifications/"+verification.ID+"/review", adminToken, map[string]interface{}{
		"approve":     true,
		"admin_notes": "Documents match.",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var profile models.CaregiverProfile
	require.NoError(t, ts.DB.Where("user_id = ?", caregiver.ID).First(&profile).Error)
	assert.Equal(t, models.IDVerificationApproved, profile.IDVerificationStatus)

	// Re-reviewing a decided submission fails.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/admin/id-verifications/"+verification.ID+"/review", adminToken, map[string]interface{}{
		"approve": false,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestIDVerificationRejection(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	require.NoError(t, ts.DB.Model(&models.CaregiverProfile{}).
		Where("user_id = ?", caregiver.ID).
		Update("id_verification_status", models.IDVerificationNotSubmitted).Error)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/caregiver/submit-id-verification", token, map[string]interface{}{
		"document_type":   string(models.DocumentTypePassport),
		"id_document_url": "https://cdn.example.com/docs/passport.jpg",
		"selfie_url":      "https://cdn.example.com/docs/selfie.jpg",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var verification models.IDVerification
	require.NoError(t, json.Unmarshal([]byte(body), &verification))

	adminToken := loginAdmin(t, ts)
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/admin/id-verifications/"+verification.ID+"/review", adminToken, map[string]interface{}{
		"approve":     false,
		"admin_notes": "Selfie does not match the document.",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var profile models.CaregiverProfile
	require.NoError(t, ts.DB.Where("user_id = ?", caregiver.ID).First(&profile).Error)
	assert.Equal(t, models.IDVerificationRejected, profile.IDVerificationStatus)

	// A rejected caregiver may resubmit.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/caregiver/submit-id-verification", token, map[string]interface{}{
		"document_type":   string(models.DocumentTypePassport),
		"id_document_url": "https://cdn.example.com/docs/passport2.jpg",
		"selfie_url":      "https://cdn.example.com/docs/selfie2.jpg",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginCaregiver(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/admin/id-verifications/some-id/review", token, map[string]interface{}{
		"approve": true,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestCaregiverEndpointsRejectPetOwners(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginOwner(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/caregiver/services", token, map[string]interface{}{
		"service_type": "dog_walking",
		"title":        "Walks",
		"base_price":   20,
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
