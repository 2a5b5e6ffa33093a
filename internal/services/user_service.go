package services

import (
	"volunhub_backend/internal/models"
	"volunhub_backend/internal/repositories"
	"volunhub_backend/internal/services/dto"
	"volunhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetByID(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// UpdateProfile applies a partial update. Fields that belong to the other
// role are silently ignored, matching the role-conditional profile shape.
func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}

	switch {
	case user.Role == models.UserRoleOrganization:
		if req.WhatsappNumber != nil && *req.WhatsappNumber != "" {
			user.WhatsappNumber = *req.WhatsappNumber
		}
	case user.Role.IsVolunteer():
		if req.PhoneNumber != nil && *req.PhoneNumber != "" {
			user.PhoneNumber = *req.PhoneNumber
		}
		if req.ReferenceName != nil && *req.ReferenceName != "" {
			user.ReferenceName = *req.ReferenceName
		}
		if req.ReferencePhone != nil && *req.ReferencePhone != "" {
			user.ReferencePhone = *req.ReferencePhone
		}
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}
