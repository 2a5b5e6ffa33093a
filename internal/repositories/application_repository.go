package repositories

import (
	"errors"

	"volunhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationExists = errors.New("application already exists")

type ApplicationRepository interface {
	Exists(db *gorm.DB, userID, listingID string) (bool, error)
	// Submit inserts the application and the owner notification in one
	// transaction: either both rows land or neither does.
	Submit(db *gorm.DB, application *models.Application, notification *models.Message) error
	FindReceivedByOwner(db *gorm.DB, ownerID string) ([]models.Application, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Exists(db *gorm.DB, userID, listingID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApplicationRepositoryImpl) Submit(db *gorm.DB, application *models.Application, notification *models.Message) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			// Concurrent duplicate submissions race past the advisory
			// check; the composite unique index catches them here.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrApplicationExists
			}
			return err
		}
		return tx.Create(notification).Error
	})
}

func (r *ApplicationRepositoryImpl) FindReceivedByOwner(db *gorm.DB, ownerID string) ([]models.Application, error) {
	// The join excludes applications whose listing is gone or no longer
	// owned by the caller.
	var applications []models.Application
	err := db.
		Joins("JOIN listings ON listings.id = applications.listing_id").
		Where("listings.created_by = ?", ownerID).
		Preload("User").
		Preload("Listing").
		Order("applications.created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}
