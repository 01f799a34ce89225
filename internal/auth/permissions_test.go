package auth

import (
	"testing"

	"petbnb_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanCreateBookings(t *testing.T) {
	assert.True(t, CanCreateBookings(&models.User{EmailVerified: true}))
	assert.False(t, CanCreateBookings(&models.User{EmailVerified: false}))
}

func TestCanCreateServices(t *testing.T) {
	caregiver := &models.User{Role: models.UserRoleCaregiver, EmailVerified: true}
	approved := &models.CaregiverProfile{IDVerificationStatus: models.IDVerificationApproved}
	pending := &models.CaregiverProfile{IDVerificationStatus: models.IDVerificationPending}

	assert.True(t, CanCreateServices(caregiver, approved))
	assert.False(t, CanCreateServices(caregiver, pending))
	assert.False(t, CanCreateServices(caregiver, nil))

	unverified := &models.User{Role: models.UserRoleCaregiver, EmailVerified: false}
	assert.False(t, CanCreateServices(unverified, approved))

	owner := &models.User{Role: models.UserRolePetOwner, EmailVerified: true}
	assert.False(t, CanCreateServices(owner, approved))
}

func TestCanSubmitIDVerification(t *testing.T) {
	assert.True(t, CanSubmitIDVerification(&models.User{Role: models.UserRoleCaregiver, EmailVerified: true}))
	assert.False(t, CanSubmitIDVerification(&models.User{Role: models.UserRoleCaregiver, EmailVerified: false}))
	assert.False(t, CanSubmitIDVerification(&models.User{Role: models.UserRolePetOwner, EmailVerified: true}))
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole("pet_owner"))
	assert.NoError(t, ValidateRole("caregiver"))
	assert.Error(t, ValidateRole("admin"))
	assert.Error(t, ValidateRole("superuser"))
	assert.Error(t, ValidateRole(""))
}
