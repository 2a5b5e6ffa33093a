package services_test

import (
	"testing"

	"volunhub_backend/internal/models"
	"volunhub_backend/internal/services"
	"volunhub_backend/internal/services/dto"
	"volunhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orgUser(id string) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Helping Hands",
		Email:     id + "@example.com",
		Role:      models.UserRoleOrganization,
	}
}

func volunteerUser(id string) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Aliya",
		Email:     id + "@example.com",
		Role:      models.UserRoleFemale,
	}
}

func createListingRequest() *dto.CreateListingRequest {
	return &dto.CreateListingRequest{
		JobTitle:        "Food drive helper",
		Description:     "Sort and pack donations",
		Location:        "Almaty",
		VolunteerGender: models.VolunteerGenderFemale,
	}
}

func TestListingCreate(t *testing.T) {
	repo := newFakeListingRepo()
	svc := services.NewListingService(repo)

	listing, err := svc.Create(nil, orgUser("org-1"), createListingRequest(), "/files/listings/img.png")
	require.NoError(t, err)

	assert.Equal(t, "org-1", listing.CreatedBy)
	assert.Equal(t, "Food drive helper", listing.JobTitle)
	assert.Equal(t, "/files/listings/img.png", listing.ImageURL)
	assert.NotEmpty(t, listing.ID)
}

func TestListingCreate_VolunteerForbidden(t *testing.T) {
	svc := services.NewListingService(newFakeListingRepo())

	_, err := svc.Create(nil, volunteerUser("vol-1"), createListingRequest(), "")
	assert.ErrorIs(t, err, apperrors.ErrOrganizationOnly)
}

func TestListingCreate_BadGender(t *testing.T) {
	svc := services.NewListingService(newFakeListingRepo())

	req := createListingRequest()
	req.VolunteerGender = models.VolunteerGender("any")
	_, err := svc.Create(nil, orgUser("org-1"), req, "")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestListingUpdate(t *testing.T) {
	repo := newFakeListingRepo()
	svc := services.NewListingService(repo)

	listing, err := svc.Create(nil, orgUser("org-1"), createListingRequest(), "")
	require.NoError(t, err)

	title := "Warehouse assistant"
	location := "Astana"
	updated, err := svc.Update(nil, "org-1", listing.ID, &dto.UpdateListingRequest{
		JobTitle: &title,
		Location: &location,
	})
	require.NoError(t, err)
	assert.Equal(t, "Warehouse assistant", updated.JobTitle)
	assert.Equal(t, "Astana", updated.Location)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Sort and pack donations", updated.Description)
}

func TestListingUpdate_NotOwner(t *testing.T) {
	repo := newFakeListingRepo()
	svc := services.NewListingService(repo)

	listing, err := svc.Create(nil, orgUser("org-1"), createListingRequest(), "")
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(nil, "org-2", listing.ID, &dto.UpdateListingRequest{JobTitle: &title})
	assert.ErrorIs(t, err, apperrors.ErrNotListingOwner)
}

func TestListingUpdate_NotFound(t *testing.T) {
	svc := services.NewListingService(newFakeListingRepo())

	title := "Anything"
	_, err := svc.Update(nil, "org-1", "missing-id", &dto.UpdateListingRequest{JobTitle: &title})
	assert.ErrorIs(t, err, apperrors.ErrListingNotFound)
}

func TestListingDelete(t *testing.T) {
	repo := newFakeListingRepo()
	svc := services.NewListingService(repo)

	listing, err := svc.Create(nil, orgUser("org-1"), createListingRequest(), "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(nil, "org-1", listing.ID))

	listings, err := svc.List(nil, "")
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestListingDelete_NotOwner(t *testing.T) {
	repo := newFakeListingRepo()
	svc := services.NewListingService(repo)

	listing, err := svc.Create(nil, orgUser("org-1"), createListingRequest(), "")
	require.NoError(t, err)

	err = svc.Delete(nil, "vol-1", listing.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotListingOwner)

	// Still there.
	listings, err := svc.List(nil, "")
	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestListingList_GenderFilter(t *testing.T) {
	repo := newFakeListingRepo()
	svc := services.NewListingService(repo)

	female := createListingRequest()
	male := createListingRequest()
	male.JobTitle = "Heavy lifting"
	male.VolunteerGender = models.VolunteerGenderMale

	_, err := svc.Create(nil, orgUser("org-1"), female, "")
	require.NoError(t, err)
	_, err = svc.Create(nil, orgUser("org-1"), male, "")
	require.NoError(t, err)

	all, err := svc.List(nil, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	males, err := svc.List(nil, models.VolunteerGenderMale)
	require.NoError(t, err)
	require.Len(t, males, 1)
	assert.Equal(t, "Heavy lifting", males[0].JobTitle)
}

func TestListingList_BadGender(t *testing.T) {
	svc := services.NewListingService(newFakeListingRepo())

	_, err := svc.List(nil, models.VolunteerGender("other"))
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestListingMine(t *testing.T) {
	repo := newFakeListingRepo()
	svc := services.NewListingService(repo)

	_, err := svc.Create(nil, orgUser("org-1"), createListingRequest(), "")
	require.NoError(t, err)

	other := createListingRequest()
	other.JobTitle = "Other org's listing"
	_, err = svc.Create(nil, orgUser("org-2"), other, "")
	require.NoError(t, err)

	mine, err := svc.Mine(nil, "org-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "org-1", mine[0].CreatedBy)
}
