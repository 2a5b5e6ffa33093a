package repositories

import (
	"errors"

	"volunhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepository interface {
	Create(db *gorm.DB, listing *models.Listing) error
	FindByID(db *gorm.DB, id string) (*models.Listing, error)
	FindAll(db *gorm.DB, gender models.VolunteerGender) ([]models.Listing, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.Listing, error)
	Update(db *gorm.DB, listing *models.Listing) error
	Delete(db *gorm.DB, id string) error
}

type ListingRepositoryImpl struct{}

func NewListingRepository() ListingRepository {
	return &ListingRepositoryImpl{}
}

func (r *ListingRepositoryImpl) Create(db *gorm.DB, listing *models.Listing) error {
	return db.Create(listing).Error
}

func (r *ListingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Listing, error) {
	var listing models.Listing
	err := db.First(&listing, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepositoryImpl) FindAll(db *gorm.DB, gender models.VolunteerGender) ([]models.Listing, error) {
	var listings []models.Listing
	query := db.Order("created_at DESC")
	if gender != "" {
		query = query.Where("volunteer_gender = ?", gender)
	}
	if err := query.Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.Listing, error) {
	var listings []models.Listing
	err := db.Where("created_by = ?", ownerID).Order("created_at DESC").Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepositoryImpl) Update(db *gorm.DB, listing *models.Listing) error {
	return db.Save(listing).Error
}

func (r *ListingRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Listing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}
