package usecase

import "travel_journal/internal/shared/apperr"

var (
	// ErrAlreadyLiked is returned when the (user, entry) pair is already liked.
	ErrAlreadyLiked = apperr.New(apperr.KindConflict, "User has already liked this travel entry")

	// ErrUnknownReference is returned when the user or the entry does not exist.
	ErrUnknownReference = apperr.New(apperr.KindNotFound, "User or travel entry not found")
)
