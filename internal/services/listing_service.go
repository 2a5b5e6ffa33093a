package services

import (
	"volunhub_backend/internal/models"
	"volunhub_backend/internal/repositories"
	"volunhub_backend/internal/services/dto"
	"volunhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ListingService interface {
	Create(db *gorm.DB, owner *models.User, req *dto.CreateListingRequest, imageURL string) (*models.Listing, error)
	Update(db *gorm.DB, callerID, listingID string, req *dto.UpdateListingRequest) (*models.Listing, error)
	Delete(db *gorm.DB, callerID, listingID string) error
	List(db *gorm.DB, gender models.VolunteerGender) ([]models.Listing, error)
	Mine(db *gorm.DB, ownerID string) ([]models.Listing, error)
}

type ListingServiceImpl struct {
	listingRepo repositories.ListingRepository
}

func NewListingService(listingRepo repositories.ListingRepository) ListingService {
	return &ListingServiceImpl{listingRepo: listingRepo}
}

func (s *ListingServiceImpl) Create(db *gorm.DB, owner *models.User, req *dto.CreateListingRequest, imageURL string) (*models.Listing, error) {
	if owner.Role != models.UserRoleOrganization {
		return nil, apperrors.ErrOrganizationOnly
	}
	if !req.VolunteerGender.Valid() {
		return nil, apperrors.ValidationError(map[string]string{
			"volunteer_gender": "Must be one of: male, female",
		})
	}

	listing := &models.Listing{
		CreatedBy:       owner.ID,
		JobTitle:        req.JobTitle,
		Description:     req.Description,
		Location:        req.Location,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		VolunteerGender: req.VolunteerGender,
		ImageURL:        imageURL,
	}
	if err := s.listingRepo.Create(db, listing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listing, nil
}

func (s *ListingServiceImpl) Update(db *gorm.DB, callerID, listingID string, req *dto.UpdateListingRequest) (*models.Listing, error) {
	listing, err := s.loadOwned(db, callerID, listingID)
	if err != nil {
		return nil, err
	}

	if req.JobTitle != nil {
		listing.JobTitle = *req.JobTitle
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.StartDate != nil {
		listing.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		listing.EndDate = req.EndDate
	}
	if req.VolunteerGender != nil {
		if !req.VolunteerGender.Valid() {
			return nil, apperrors.ValidationError(map[string]string{
				"volunteer_gender": "Must be one of: male, female",
			})
		}
		listing.VolunteerGender = *req.VolunteerGender
	}

	if err := s.listingRepo.Update(db, listing); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listing, nil
}

func (s *ListingServiceImpl) Delete(db *gorm.DB, callerID, listingID string) error {
	if _, err := s.loadOwned(db, callerID, listingID); err != nil {
		return err
	}
	if err := s.listingRepo.Delete(db, listingID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ListingServiceImpl) List(db *gorm.DB, gender models.VolunteerGender) ([]models.Listing, error) {
	if gender != "" && !gender.Valid() {
		return nil, apperrors.ValidationError(map[string]string{
			"volunteerGender": "Must be one of: male, female",
		})
	}
	listings, err := s.listingRepo.FindAll(db, gender)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listings, nil
}

func (s *ListingServiceImpl) Mine(db *gorm.DB, ownerID string) ([]models.Listing, error) {
	listings, err := s.listingRepo.FindByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return listings, nil
}

// loadOwned fetches the listing and enforces ownership: 404 when absent,
// 403 when owned by someone else.
func (s *ListingServiceImpl) loadOwned(db *gorm.DB, callerID, listingID string) (*models.Listing, error) {
	listing, err := s.listingRepo.FindByID(db, listingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if listing.CreatedBy != callerID {
		return nil, apperrors.ErrNotListingOwner
	}
	return listing, nil
}
