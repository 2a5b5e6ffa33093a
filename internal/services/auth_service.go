package services

import (
	"time"

	"volunhub_backend/internal/auth"
	"volunhub_backend/internal/models"
	"volunhub_backend/internal/repositories"
	"volunhub_backend/internal/services/dto"
	"volunhub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := validateRoleFields(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	switch {
	case req.Role == models.UserRoleOrganization:
		user.WhatsappNumber = req.WhatsappNumber
	case req.Role.IsVolunteer():
		user.PhoneNumber = req.PhoneNumber
		user.ReferenceName = req.ReferenceName
		user.ReferencePhone = req.ReferencePhone
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// validateRoleFields is the single exhaustive check of role-conditional
// required fields.
func validateRoleFields(req *dto.SignupRequest) error {
	switch req.Role {
	case models.UserRoleOrganization:
		if req.WhatsappNumber == "" {
			return apperrors.ValidationError(map[string]string{
				"whatsapp_number": "WhatsApp number is required for organizations",
			})
		}
	case models.UserRoleMale, models.UserRoleFemale:
		missing := map[string]string{}
		if req.PhoneNumber == "" {
			missing["phone_number"] = "Phone number is required for volunteers"
		}
		if req.ReferenceName == "" {
			missing["reference_name"] = "Reference name is required for volunteers"
		}
		if req.ReferencePhone == "" {
			missing["reference_phone"] = "Reference phone is required for volunteers"
		}
		if len(missing) > 0 {
			return apperrors.ValidationError(missing)
		}
	default:
		return apperrors.ErrInvalidUserRole
	}
	return nil
}
