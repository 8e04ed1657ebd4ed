// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"

	"travel_journal/internal/shared/apperr"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = apperr.New(apperr.KindNotFound, "User not found")

	// ErrEmailAlreadyExists is returned when signing up with a registered email.
	ErrEmailAlreadyExists = apperr.New(apperr.KindConflict, "Email already exists")

	// ErrAccountNameTaken is returned when signing up with a taken display name.
	ErrAccountNameTaken = apperr.New(apperr.KindConflict, "Username already taken")

	// ErrInvalidCredentials is returned for any failed login.
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthorized, "Invalid credentials")

	// ErrDuplicateUser is returned by repositories when an insert violates a
	// uniqueness constraint.
	ErrDuplicateUser = errors.New("duplicate user")
)
