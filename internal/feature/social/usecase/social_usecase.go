// Package usecase implements likes and comments on travel entries.
package usecase

import (
	"context"
	"errors"
	"strings"

	"travel_journal/internal/feature/social/domain/entity"
	"travel_journal/internal/shared/apperr"
)

// LikeRepository persists likes. AddLike returns ErrAlreadyLiked on a
// duplicate pair and ErrUnknownReference on a dangling user or entry.
type LikeRepository interface {
	AddLike(ctx context.Context, l *entity.Like) error
	ListLikes(ctx context.Context, historyID uint) ([]entity.Like, error)
}

// CommentRepository persists comments. AddComment fills in the author's
// account name.
type CommentRepository interface {
	AddComment(ctx context.Context, c *entity.Comment) error
	ListComments(ctx context.Context, historyID uint) ([]entity.Comment, error)
}

type SocialUsecase struct {
	likes    LikeRepository
	comments CommentRepository
}

func NewSocialUsecase(likes LikeRepository, comments CommentRepository) *SocialUsecase {
	return &SocialUsecase{likes: likes, comments: comments}
}

// Like records that userID liked historyID.
func (u *SocialUsecase) Like(ctx context.Context, userID, historyID uint) (*entity.Like, error) {
	if err := requireIDs(userID, historyID); err != nil {
		return nil, err
	}

	l := &entity.Like{UserID: userID, HistoryID: historyID}
	if err := u.likes.AddLike(ctx, l); err != nil {
		return nil, passOr(err, "Failed to add like")
	}
	return l, nil
}

// Likes returns the likes of historyID, newest first.
func (u *SocialUsecase) Likes(ctx context.Context, historyID uint) ([]entity.Like, error) {
	if historyID == 0 {
		return nil, apperr.Validation("Invalid history ID", "history_id")
	}
	likes, err := u.likes.ListLikes(ctx, historyID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to fetch likes", err)
	}
	return likes, nil
}

// Comment stores text as userID's comment on historyID.
func (u *SocialUsecase) Comment(ctx context.Context, userID, historyID uint, text string) (*entity.Comment, error) {
	var missing []string
	if userID == 0 {
		missing = append(missing, "userID")
	}
	if historyID == 0 {
		missing = append(missing, "history_id")
	}
	if strings.TrimSpace(text) == "" {
		missing = append(missing, "comment_text")
	}
	if len(missing) > 0 {
		return nil, apperr.MissingFields(missing...)
	}

	c := &entity.Comment{UserID: userID, HistoryID: historyID, Text: text}
	if err := u.comments.AddComment(ctx, c); err != nil {
		return nil, passOr(err, "Failed to add comment")
	}
	return c, nil
}

// Comments returns the comments of historyID, newest first.
func (u *SocialUsecase) Comments(ctx context.Context, historyID uint) ([]entity.Comment, error) {
	if historyID == 0 {
		return nil, apperr.Validation("Invalid history ID", "history_id")
	}
	comments, err := u.comments.ListComments(ctx, historyID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to fetch comments", err)
	}
	return comments, nil
}

func requireIDs(userID, historyID uint) error {
	var missing []string
	if userID == 0 {
		missing = append(missing, "userID")
	}
	if historyID == 0 {
		missing = append(missing, "history_id")
	}
	if len(missing) > 0 {
		return apperr.MissingFields(missing...)
	}
	return nil
}

// passOr keeps the repository sentinels and wraps anything else as internal.
func passOr(err error, msg string) error {
	switch {
	case errors.Is(err, ErrAlreadyLiked):
		return ErrAlreadyLiked
	case errors.Is(err, ErrUnknownReference):
		return ErrUnknownReference
	}
	return apperr.Wrap(apperr.KindInternal, msg, err)
}
