package usecase

import "travel_journal/internal/shared/apperr"

// ErrGoalNotFound is returned when a goal id does not exist.
var ErrGoalNotFound = apperr.New(apperr.KindNotFound, "Goal not found")
