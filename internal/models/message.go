package models

import (
	"time"

	"gorm.io/datatypes"
)

// Message is either a public board post (no recipient) or a private,
// recipient-scoped message. Application notifications are private messages
// with a listing reference and a structured Data payload.
type Message struct {
	BaseModel
	SenderID    *string `gorm:"type:uuid;index" json:"sender_id,omitempty"`
	RecipientID *string `gorm:"type:uuid;index" json:"recipient_id,omitempty"`
	ListingID   *string `gorm:"type:uuid;index" json:"listing_id,omitempty"`
	Content     string  `gorm:"not null" json:"content"`

	IsRead bool           `gorm:"default:false" json:"is_read"`
	ReadAt *time.Time     `json:"read_at,omitempty"`
	Data   datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"listing_id": "...", "applicant_id": "..."}

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

// IsBoardPost reports whether the message is a public board post.
func (m *Message) IsBoardPost() bool {
	return m.RecipientID == nil
}
