package models

type UserRole string
type VolunteerGender string

const (
	UserRoleOrganization UserRole = "organization"
	UserRoleMale         UserRole = "male"
	UserRoleFemale       UserRole = "female"

	VolunteerGenderMale   VolunteerGender = "male"
	VolunteerGenderFemale VolunteerGender = "female"
)

// IsVolunteer reports whether the role is one of the volunteer variants.
func (r UserRole) IsVolunteer() bool {
	return r == UserRoleMale || r == UserRoleFemale
}

// Valid reports whether the role is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleOrganization, UserRoleMale, UserRoleFemale:
		return true
	}
	return false
}

func (g VolunteerGender) Valid() bool {
	return g == VolunteerGenderMale || g == VolunteerGenderFemale
}
