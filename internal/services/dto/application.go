package dto

import (
	"time"

	"volunhub_backend/internal/models"
)

type SubmitApplicationRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
}

// ReceivedApplication is one row of an organization's received-applications
// view: the applicant plus the listing the application targets.
type ReceivedApplication struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Applicant *UserResponse `json:"applicant"`
	Listing   *ListingRef   `json:"listing"`
}

type ListingRef struct {
	ID       string `json:"id"`
	JobTitle string `json:"job_title"`
	Location string `json:"location"`
}

func NewReceivedApplication(app *models.Application) *ReceivedApplication {
	row := &ReceivedApplication{
		ID:        app.ID,
		CreatedAt: app.CreatedAt,
	}
	if app.User != nil {
		row.Applicant = NewUserResponse(app.User)
	}
	if app.Listing != nil {
		row.Listing = &ListingRef{
			ID:       app.Listing.ID,
			JobTitle: app.Listing.JobTitle,
			Location: app.Listing.Location,
		}
	}
	return row
}
