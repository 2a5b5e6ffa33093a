package services_test

import (
	"testing"

	"volunhub_backend/internal/services"
	"volunhub_backend/internal/services/dto"
	"volunhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGetByID(t *testing.T) {
	users := newFakeUserRepo()
	svc := services.NewUserService(users)

	org := orgUser("org-1")
	org.WhatsappNumber = "+77010000000"
	require.NoError(t, users.Create(nil, org))

	resp, err := svc.GetByID(nil, "org-1")
	require.NoError(t, err)
	assert.Equal(t, "org-1", resp.ID)
	assert.Equal(t, "+77010000000", resp.WhatsappNumber)
	assert.Empty(t, resp.PhoneNumber)
}

func TestUserGetByID_NotFound(t *testing.T) {
	svc := services.NewUserService(newFakeUserRepo())

	_, err := svc.GetByID(nil, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfile_Volunteer(t *testing.T) {
	users := newFakeUserRepo()
	svc := services.NewUserService(users)

	vol := volunteerUser("vol-1")
	vol.PhoneNumber = "+77020000000"
	require.NoError(t, users.Create(nil, vol))

	name := "Aliya B."
	phone := "+77029999999"
	whatsapp := "+77777777777"
	resp, err := svc.UpdateProfile(nil, "vol-1", &dto.UpdateProfileRequest{
		Name:           &name,
		PhoneNumber:    &phone,
		WhatsappNumber: &whatsapp,
	})
	require.NoError(t, err)

	assert.Equal(t, "Aliya B.", resp.Name)
	assert.Equal(t, "+77029999999", resp.PhoneNumber)
	// An organization field submitted by a volunteer is ignored.
	assert.Empty(t, resp.WhatsappNumber)

	stored, err := users.FindByID(nil, "vol-1")
	require.NoError(t, err)
	assert.Empty(t, stored.WhatsappNumber)
}

func TestUpdateProfile_Organization(t *testing.T) {
	users := newFakeUserRepo()
	svc := services.NewUserService(users)

	org := orgUser("org-1")
	org.WhatsappNumber = "+77010000000"
	require.NoError(t, users.Create(nil, org))

	whatsapp := "+77018888888"
	phone := "+77029999999"
	resp, err := svc.UpdateProfile(nil, "org-1", &dto.UpdateProfileRequest{
		WhatsappNumber: &whatsapp,
		PhoneNumber:    &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, "+77018888888", resp.WhatsappNumber)
	assert.Empty(t, resp.PhoneNumber)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	svc := services.NewUserService(newFakeUserRepo())

	name := "Nobody"
	_, err := svc.UpdateProfile(nil, "ghost", &dto.UpdateProfileRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
