package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"petbnb_backend/internal/models"
	"petbnb_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginOwner(t, ts)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/pets", token, map[string]interface{}{
		"name":    "Mochi",
		"species": "cat",
		"breed":   "ragdoll",
		"age":     2,
		"weight":  4.2,
		"medical_info": map[string]interface{}{
			"allergies": []string{"chicken"},
		},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var pet struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &pet))
	require.NotEmpty(t, pet.ID)

	// Update a subset of fields.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/pets/"+pet.ID, token, map[string]interface{}{
		"name": "Mochi II",
		"age":  3,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &pet))
	assert.Equal(t, "Mochi II", pet.Name)

	// Listing shows the pet.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/pets", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var pets []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &pets))
	assert.Len(t, pets, 1)

	// Soft delete hides it from the list but keeps the row.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/pets/"+pet.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/pets", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &pets))
	assert.Len(t, pets, 0)

	var row models.Pet
	require.NoError(t, ts.DB.Where("id = ?", pet.ID).First(&row).Error)
	assert.False(t, row.IsActive)
}

func TestPetCreationRequiresVerifiedEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginOwner(t, ts)
	require.NoError(t, ts.DB.Model(user).Update("email_verified", false).Error)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/pets", token, map[string]interface{}{
		"name":    "Blocked",
		"species": "dog",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestPetDeleteBlockedByActiveBooking(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	_, caregiver := helpers.CreateAndLoginCaregiver(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)
	service := helpers.CreateService(t, ts.DB, caregiver.ID)

	helpers.CreateBooking(t, ts.DB, owner.ID, caregiver.ID, pet.ID, service.ID,
		models.BookingStatusConfirmed, time.Now().Add(24*time.Hour))

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/pets/"+pet.ID, ownerToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var row models.Pet
	require.NoError(t, ts.DB.Where("id = ?", pet.ID).First(&row).Error)
	assert.True(t, row.IsActive)
}

func TestPetImages(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, owner := helpers.CreateAndLoginOwner(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/pets/"+pet.ID+"/upload-image", token, map[string]interface{}{
		"image_url": "https://cdn.example.com/biscuit-1.jpg",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/pets/"+pet.ID+"/upload-image", token, map[string]interface{}{
		"image_url": "https://cdn.example.com/biscuit-2.jpg",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var withImages struct {
		Images []string `json:"images"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &withImages))
	require.Len(t, withImages.Images, 2)

	// Remove the first image by index.
	res, body = ts.SendRequest(t, http.MethodDelete, "/api/pets/"+pet.ID+"/images/0", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &withImages))
	require.Len(t, withImages.Images, 1)
	assert.Equal(t, "https://cdn.example.com/biscuit-2.jpg", withImages.Images[0])

	// Out-of-range index.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/pets/"+pet.ID+"/images/5", token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestPetAccessIsOwnerScoped(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	_, owner := helpers.CreateAndLoginOwner(t, ts)
	strangerToken, _ := helpers.CreateAndLoginOwner(t, ts)
	pet := helpers.CreatePet(t, ts.DB, owner.ID)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/pets/"+pet.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
