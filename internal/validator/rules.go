package validator

import (
	"github.com/go-playground/validator/v10"

	"volunhub_backend/internal/models"
)

// registerCustomRules wires the domain enum rules.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("user_role", validateUserRole); err != nil {
		return err
	}
	return v.RegisterValidation("volunteer_gender", validateVolunteerGender)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.UserRole(fl.Field().String()).Valid()
}

func validateVolunteerGender(fl validator.FieldLevel) bool {
	return models.VolunteerGender(fl.Field().String()).Valid()
}
