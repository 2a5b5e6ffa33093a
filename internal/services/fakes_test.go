package services_test

import (
	"time"

	"volunhub_backend/internal/models"
	"volunhub_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. The db argument is unused; services pass the
// request-scoped handle straight through to repositories, so the fakes can
// ignore it.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakeListingRepo struct {
	listings []*models.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{}
}

func (r *fakeListingRepo) Create(_ *gorm.DB, listing *models.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	listing.CreatedAt = time.Now()
	copied := *listing
	r.listings = append(r.listings, &copied)
	return nil
}

func (r *fakeListingRepo) FindByID(_ *gorm.DB, id string) (*models.Listing, error) {
	for _, listing := range r.listings {
		if listing.ID == id {
			copied := *listing
			return &copied, nil
		}
	}
	return nil, repositories.ErrListingNotFound
}

func (r *fakeListingRepo) FindAll(_ *gorm.DB, gender models.VolunteerGender) ([]models.Listing, error) {
	var out []models.Listing
	// Newest first
	for i := len(r.listings) - 1; i >= 0; i-- {
		listing := r.listings[i]
		if gender != "" && listing.VolunteerGender != gender {
			continue
		}
		out = append(out, *listing)
	}
	return out, nil
}

func (r *fakeListingRepo) FindByOwner(_ *gorm.DB, ownerID string) ([]models.Listing, error) {
	var out []models.Listing
	for i := len(r.listings) - 1; i >= 0; i-- {
		if r.listings[i].CreatedBy == ownerID {
			out = append(out, *r.listings[i])
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Update(_ *gorm.DB, listing *models.Listing) error {
	for i, existing := range r.listings {
		if existing.ID == listing.ID {
			copied := *listing
			r.listings[i] = &copied
			return nil
		}
	}
	return repositories.ErrListingNotFound
}

func (r *fakeListingRepo) Delete(_ *gorm.DB, id string) error {
	for i, existing := range r.listings {
		if existing.ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			return nil
		}
	}
	return repositories.ErrListingNotFound
}

type fakeApplicationRepo struct {
	applications []*models.Application
	messages     *fakeMessageRepo
	listings     *fakeListingRepo
}

func newFakeApplicationRepo(messages *fakeMessageRepo, listings *fakeListingRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{messages: messages, listings: listings}
}

func (r *fakeApplicationRepo) Exists(_ *gorm.DB, userID, listingID string) (bool, error) {
	for _, app := range r.applications {
		if app.UserID == userID && app.ListingID == listingID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) Submit(db *gorm.DB, application *models.Application, notification *models.Message) error {
	if exists, _ := r.Exists(db, application.UserID, application.ListingID); exists {
		return repositories.ErrApplicationExists
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	application.CreatedAt = time.Now()
	copied := *application
	r.applications = append(r.applications, &copied)
	return r.messages.Create(db, notification)
}

func (r *fakeApplicationRepo) FindReceivedByOwner(db *gorm.DB, ownerID string) ([]models.Application, error) {
	var out []models.Application
	for i := len(r.applications) - 1; i >= 0; i-- {
		app := r.applications[i]
		listing, err := r.listings.FindByID(db, app.ListingID)
		if err != nil || listing.CreatedBy != ownerID {
			continue
		}
		copied := *app
		copied.Listing = listing
		out = append(out, copied)
	}
	return out, nil
}

type fakeMessageRepo struct {
	messages []*models.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(_ *gorm.DB, message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	message.CreatedAt = time.Now()
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeMessageRepo) FindBoard(_ *gorm.DB) ([]models.Message, error) {
	var out []models.Message
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].RecipientID == nil {
			out = append(out, *r.messages[i])
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) FindByRecipient(_ *gorm.DB, recipientID string) ([]models.Message, error) {
	var out []models.Message
	for i := len(r.messages) - 1; i >= 0; i-- {
		msg := r.messages[i]
		if msg.RecipientID != nil && *msg.RecipientID == recipientID {
			out = append(out, *msg)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) CountUnread(_ *gorm.DB, recipientID string) (int64, error) {
	var count int64
	for _, msg := range r.messages {
		if msg.RecipientID != nil && *msg.RecipientID == recipientID && !msg.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) MarkRead(_ *gorm.DB, id, recipientID string) error {
	for _, msg := range r.messages {
		if msg.ID == id && msg.RecipientID != nil && *msg.RecipientID == recipientID {
			now := time.Now()
			msg.IsRead = true
			msg.ReadAt = &now
			return nil
		}
	}
	return repositories.ErrMessageNotFound
}

func (r *fakeMessageRepo) Delete(_ *gorm.DB, id, recipientID string) error {
	for i, msg := range r.messages {
		if msg.ID == id && msg.RecipientID != nil && *msg.RecipientID == recipientID {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return repositories.ErrMessageNotFound
}
