package dto

import (
	"time"

	"volunhub_backend/internal/models"
)

// UserResponse is the public identity projection. The password hash never
// leaves the service layer; role-specific fields are included only for the
// matching role.
type UserResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`

	WhatsappNumber string `json:"whatsapp_number,omitempty"`

	PhoneNumber    string `json:"phone_number,omitempty"`
	ReferenceName  string `json:"reference_name,omitempty"`
	ReferencePhone string `json:"reference_phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	switch {
	case user.Role == models.UserRoleOrganization:
		resp.WhatsappNumber = user.WhatsappNumber
	case user.Role.IsVolunteer():
		resp.PhoneNumber = user.PhoneNumber
		resp.ReferenceName = user.ReferenceName
		resp.ReferencePhone = user.ReferencePhone
	}
	return resp
}

// UpdateProfileRequest is a partial update: nil fields stay untouched.
// Fields belonging to the other role are ignored.
type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	WhatsappNumber *string `json:"whatsapp_number,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	ReferenceName  *string `json:"reference_name,omitempty"`
	ReferencePhone *string `json:"reference_phone,omitempty"`
}
