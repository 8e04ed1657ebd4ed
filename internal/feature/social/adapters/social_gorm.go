// Package adapters provides the gorm implementation of likes and comments.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travel_journal/internal/feature/social/domain/entity"
	"travel_journal/internal/feature/social/usecase"
	"travel_journal/internal/platform/db"
)

// LikeModel maps the likes table.
type LikeModel struct {
	ID        uint      `gorm:"column:like_id;primaryKey"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:uq_likes_user_history"`
	HistoryID uint      `gorm:"column:history_id;not null;uniqueIndex:uq_likes_user_history"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (LikeModel) TableName() string {
	return "likes"
}

// CommentModel maps the comments table.
type CommentModel struct {
	ID          uint      `gorm:"column:comment_id;primaryKey"`
	UserID      uint      `gorm:"column:user_id;not null"`
	HistoryID   uint      `gorm:"column:history_id;not null;index"`
	CommentText string    `gorm:"column:comment_text;type:text;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (CommentModel) TableName() string {
	return "comments"
}

type likeRow struct {
	LikeModel
	AccountName string
}

type commentRow struct {
	CommentModel
	AccountName string
}

type socialGorm struct {
	db *gorm.DB
}

var (
	_ usecase.LikeRepository    = (*socialGorm)(nil)
	_ usecase.CommentRepository = (*socialGorm)(nil)
)

func NewSocialRepository(db *gorm.DB) *socialGorm {
	return &socialGorm{db: db}
}

func (r *socialGorm) AddLike(ctx context.Context, l *entity.Like) error {
	m := LikeModel{UserID: l.UserID, HistoryID: l.HistoryID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return classifyLike(err)
	}
	l.ID = m.ID
	l.CreatedAt = m.CreatedAt
	return nil
}

func (r *socialGorm) ListLikes(ctx context.Context, historyID uint) ([]entity.Like, error) {
	var rows []likeRow
	err := r.db.WithContext(ctx).
		Table("likes AS l").
		Select("l.*, u.account_name").
		Joins("JOIN user_info u ON u.user_id = l.user_id").
		Where("l.history_id = ?", historyID).
		Order("l.created_at DESC, l.like_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Like, len(rows))
	for i, row := range rows {
		out[i] = entity.Like{
			ID:          row.ID,
			UserID:      row.UserID,
			HistoryID:   row.HistoryID,
			AccountName: row.AccountName,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out, nil
}

// AddComment inserts the comment and reads back the author's account name
// in the same transaction.
func (r *socialGorm) AddComment(ctx context.Context, c *entity.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := CommentModel{UserID: c.UserID, HistoryID: c.HistoryID, CommentText: c.Text}
		if err := tx.Create(&m).Error; err != nil {
			if db.IsForeignKeyViolation(err) {
				return usecase.ErrUnknownReference
			}
			return err
		}

		var name string
		res := tx.Table("user_info").Select("account_name").Where("user_id = ?", c.UserID).Limit(1).Scan(&name)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrUnknownReference
		}

		c.ID = m.ID
		c.CreatedAt = m.CreatedAt
		c.AccountName = name
		return nil
	})
}

func (r *socialGorm) ListComments(ctx context.Context, historyID uint) ([]entity.Comment, error) {
	var rows []commentRow
	err := r.db.WithContext(ctx).
		Table("comments AS c").
		Select("c.*, u.account_name").
		Joins("JOIN user_info u ON u.user_id = c.user_id").
		Where("c.history_id = ?", historyID).
		Order("c.created_at DESC, c.comment_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Comment, len(rows))
	for i, row := range rows {
		out[i] = entity.Comment{
			ID:          row.ID,
			UserID:      row.UserID,
			HistoryID:   row.HistoryID,
			AccountName: row.AccountName,
			Text:        row.CommentText,
			CreatedAt:   row.CreatedAt,
		}
	}
	return out, nil
}

func classifyLike(err error) error {
	switch {
	case db.IsUniqueViolation(err):
		return usecase.ErrAlreadyLiked
	case db.IsForeignKeyViolation(err):
		return usecase.ErrUnknownReference
	}
	return err
}
