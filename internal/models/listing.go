package models

import "time"

type Listing struct {
	BaseModel
	CreatedBy       string          `gorm:"type:uuid;not null;index" json:"created_by"`
	JobTitle        string          `gorm:"not null" json:"job_title"`
	Description     string          `gorm:"not null" json:"description"`
	Location        string          `gorm:"not null" json:"location"`
	StartDate       *time.Time      `json:"start_date,omitempty"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	VolunteerGender VolunteerGender `gorm:"type:varchar(10);not null;index" json:"volunteer_gender"`
	ImageURL        string          `json:"image_url,omitempty"`

	Owner *User `gorm:"foreignKey:CreatedBy" json:"owner,omitempty"`
}
