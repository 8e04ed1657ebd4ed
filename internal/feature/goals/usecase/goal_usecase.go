// Package usecase implements the future goal operations.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"travel_journal/internal/feature/goals/domain/entity"
	"travel_journal/internal/shared/apperr"
)

// DateLayout is the wire format of target_date.
const DateLayout = "2006-01-02"

// GoalRepository persists goals.
type GoalRepository interface {
	Create(ctx context.Context, g *entity.Goal) error
	ListByUser(ctx context.Context, userID uint) ([]entity.Goal, error)
	// Update and Delete return ErrGoalNotFound when no row matches id.
	Update(ctx context.Context, g *entity.Goal) error
	Delete(ctx context.Context, id uint) error
}

// GoalInput carries the editable fields of a goal.
type GoalInput struct {
	UserID      uint
	Title       string
	Description string
	TargetDate  string
}

type GoalUsecase struct {
	repo GoalRepository
}

func NewGoalUsecase(repo GoalRepository) *GoalUsecase {
	return &GoalUsecase{repo: repo}
}

// Create stores a new goal for in.UserID.
func (u *GoalUsecase) Create(ctx context.Context, in GoalInput) (*entity.Goal, error) {
	var missing []string
	if in.UserID == 0 {
		missing = append(missing, "userID")
	}
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if len(missing) > 0 {
		return nil, apperr.MissingFields(missing...)
	}

	target, err := parseTargetDate(in.TargetDate)
	if err != nil {
		return nil, err
	}

	g := &entity.Goal{
		UserID:      in.UserID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		TargetDate:  target,
	}
	if err := u.repo.Create(ctx, g); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to add future goal", err)
	}
	return g, nil
}

// ListByUser returns the goals of userID, earliest target date first.
func (u *GoalUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.Goal, error) {
	if userID == 0 {
		return nil, apperr.Validation("Invalid user ID", "userID")
	}
	goals, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to fetch future goals", err)
	}
	return goals, nil
}

// Update replaces the title, description and target date of goal id.
func (u *GoalUsecase) Update(ctx context.Context, id uint, in GoalInput) (*entity.Goal, error) {
	if id == 0 {
		return nil, apperr.Validation("Invalid goal ID", "goalID")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.MissingFields("title")
	}
	target, err := parseTargetDate(in.TargetDate)
	if err != nil {
		return nil, err
	}

	g := &entity.Goal{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		TargetDate:  target,
	}
	if err := u.repo.Update(ctx, g); err != nil {
		return nil, notFoundOr(err, "Failed to update future goal")
	}
	return g, nil
}

// Delete removes goal id.
func (u *GoalUsecase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return apperr.Validation("Invalid goal ID", "goalID")
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Failed to delete future goal")
	}
	return nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, ErrGoalNotFound) {
		return ErrGoalNotFound
	}
	return apperr.Wrap(apperr.KindInternal, msg, err)
}

// parseTargetDate accepts an empty string (no target) or a DateLayout date.
// A full timestamp is cut to its date part.
func parseTargetDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, apperr.Validation("Invalid target date", "target_date")
	}
	return &t, nil
}
