package dto

import (
	"time"

	"volunhub_backend/internal/models"
)

// CreateListingRequest binds from multipart form fields; the optional image
// file is handled by the handler and arrives here as a stored URL.
type CreateListingRequest struct {
	JobTitle        string                 `form:"job_title" json:"job_title" binding:"required"`
	Description     string                 `form:"description" json:"description" binding:"required"`
	Location        string                 `form:"location" json:"location" binding:"required"`
	VolunteerGender models.VolunteerGender `form:"volunteer_gender" json:"volunteer_gender" binding:"required" validate:"volunteer_gender"`
	StartDate       *time.Time             `form:"start_date" json:"start_date,omitempty" time_format:"2006-01-02"`
	EndDate         *time.Time             `form:"end_date" json:"end_date,omitempty" time_format:"2006-01-02"`
}

type UpdateListingRequest struct {
	JobTitle        *string                 `json:"job_title,omitempty"`
	Description     *string                 `json:"description,omitempty"`
	Location        *string                 `json:"location,omitempty"`
	VolunteerGender *models.VolunteerGender `json:"volunteer_gender,omitempty"`
	StartDate       *time.Time              `json:"start_date,omitempty"`
	EndDate         *time.Time              `json:"end_date,omitempty"`
}

type ListListingsQuery struct {
	VolunteerGender models.VolunteerGender `form:"volunteerGender" json:"volunteerGender,omitempty"`
}
