package dto

import (
	"volunhub_backend/internal/models"
)

// SignupRequest carries the signup payload. Role-specific required fields
// are checked in the auth service with a single exhaustive switch, not with
// scattered conditional tags.
type SignupRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required" validate:"user_role"`

	// Organization fields
	WhatsappNumber string `json:"whatsapp_number,omitempty"`

	// Volunteer fields
	PhoneNumber    string `json:"phone_number,omitempty"`
	ReferenceName  string `json:"reference_name,omitempty"`
	ReferencePhone string `json:"reference_phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned from signup and login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}
