package models

// Application links a volunteer to a listing. The composite unique index
// makes the one-application-per-(user, listing) rule a storage constraint,
// not just an advisory lookup.
type Application struct {
	BaseModel
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_listing" json:"user_id"`
	ListingID string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_listing" json:"listing_id"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}
