package services

import (
	"encoding/json"
	"fmt"

	"volunhub_backend/internal/logger"
	"volunhub_backend/internal/models"
	"volunhub_backend/internal/repositories"
	"volunhub_backend/internal/services/dto"
	"volunhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Submit(db *gorm.DB, applicant *models.User, req *dto.SubmitApplicationRequest) error
	Received(db *gorm.DB, ownerID string) ([]dto.ReceivedApplication, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	listingRepo     repositories.ListingRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	listingRepo repositories.ListingRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		listingRepo:     listingRepo,
	}
}

// Submit records the application and notifies the listing owner. The
// application row and the notification message are written in one
// transaction by the repository.
func (s *ApplicationServiceImpl) Submit(db *gorm.DB, applicant *models.User, req *dto.SubmitApplicationRequest) error {
	if !applicant.Role.IsVolunteer() {
		return apperrors.ErrVolunteerOnly
	}

	listing, err := s.listingRepo.FindByID(db, req.ListingID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrListingNotFound) {
			return apperrors.ErrListingNotFound
		}
		return apperrors.InternalError(err)
	}

	exists, err := s.applicationRepo.Exists(db, applicant.ID, listing.ID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return apperrors.ErrDuplicateApplication
	}

	application := &models.Application{
		UserID:    applicant.ID,
		ListingID: listing.ID,
	}

	payload, err := json.Marshal(map[string]string{
		"listing_id":   listing.ID,
		"applicant_id": applicant.ID,
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	notification := &models.Message{
		SenderID:    &applicant.ID,
		RecipientID: &listing.CreatedBy,
		ListingID:   &listing.ID,
		Content:     fmt.Sprintf("Someone applied to your listing: %q", listing.JobTitle),
		Data:        payload,
	}

	if err := s.applicationRepo.Submit(db, application, notification); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationExists) {
			return apperrors.ErrDuplicateApplication
		}
		return apperrors.InternalError(err)
	}

	logger.Info("application submitted",
		"applicant_id", applicant.ID,
		"listing_id", listing.ID,
		"owner_id", listing.CreatedBy,
	)
	return nil
}

func (s *ApplicationServiceImpl) Received(db *gorm.DB, ownerID string) ([]dto.ReceivedApplication, error) {
	applications, err := s.applicationRepo.FindReceivedByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([]dto.ReceivedApplication, 0, len(applications))
	for i := range applications {
		rows = append(rows, *dto.NewReceivedApplication(&applications[i]))
	}
	return rows, nil
}
