package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Organization fields
	WhatsappNumber string `json:"whatsapp_number,omitempty"`

	// Volunteer fields
	PhoneNumber    string `json:"phone_number,omitempty"`
	ReferenceName  string `json:"reference_name,omitempty"`
	ReferencePhone string `json:"reference_phone,omitempty"`
}
