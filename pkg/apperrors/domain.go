package apperrors

import (
	"net/http"
)

// Predefined domain errors. Conflicts (duplicate email, duplicate
// application) report 400 like the rest of the request-level failures.

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusBadRequest,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"auth",
	"Invalid user role",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrListingNotFound = New(
	CodeNotFound,
	"listing",
	"Listing not found",
	http.StatusNotFound,
)

var ErrNotListingOwner = New(
	CodeForbidden,
	"listing",
	"Only the listing owner may modify it",
	http.StatusForbidden,
)

var ErrOrganizationOnly = New(
	CodeForbidden,
	"listing",
	"Only organizations may perform this operation",
	http.StatusForbidden,
)

var ErrVolunteerOnly = New(
	CodeForbidden,
	"application",
	"Only volunteers may apply to listings",
	http.StatusForbidden,
)

var ErrDuplicateApplication = New(
	CodeAlreadyExists,
	"application",
	"You already applied to this listing",
	http.StatusBadRequest,
)

var ErrMessageNotFound = New(
	CodeNotFound,
	"message",
	"Message not found",
	http.StatusNotFound,
)
