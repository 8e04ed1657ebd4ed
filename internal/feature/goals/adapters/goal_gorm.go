// Package adapters provides the gorm implementation of the goal store.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travel_journal/internal/feature/goals/domain/entity"
	"travel_journal/internal/feature/goals/usecase"
)

// GoalModel maps the future_goals table.
type GoalModel struct {
	ID          uint       `gorm:"column:goal_id;primaryKey"`
	UserID      uint       `gorm:"column:user_id;not null;index"`
	Title       string     `gorm:"column:title;size:255;not null"`
	Description string     `gorm:"column:description;type:text;not null;default:''"`
	TargetDate  *time.Time `gorm:"column:target_date;type:date"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (GoalModel) TableName() string {
	return "future_goals"
}

type goalRow struct {
	GoalModel
	AccountName string
}

type goalGorm struct {
	db *gorm.DB
}

var _ usecase.GoalRepository = (*goalGorm)(nil)

func NewGoalRepository(db *gorm.DB) *goalGorm {
	return &goalGorm{db: db}
}

func (r *goalGorm) Create(ctx context.Context, g *entity.Goal) error {
	m := GoalModel{
		UserID:      g.UserID,
		Title:       g.Title,
		Description: g.Description,
		TargetDate:  g.TargetDate,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	g.ID = m.ID
	g.CreatedAt = m.CreatedAt
	return nil
}

// ListByUser orders by target date; goals without one sort last.
func (r *goalGorm) ListByUser(ctx context.Context, userID uint) ([]entity.Goal, error) {
	var rows []goalRow
	err := r.db.WithContext(ctx).
		Table("future_goals AS fg").
		Select("fg.*, u.account_name").
		Joins("JOIN user_info u ON u.user_id = fg.user_id").
		Where("fg.user_id = ?", userID).
		Order("fg.target_date IS NULL, fg.target_date ASC, fg.goal_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Goal, len(rows))
	for i, row := range rows {
		out[i] = toEntity(row.GoalModel)
		out[i].AccountName = row.AccountName
	}
	return out, nil
}

func (r *goalGorm) Update(ctx context.Context, g *entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&GoalModel{}).
			Where("goal_id = ?", g.ID).
			Updates(map[string]any{
				"title":       g.Title,
				"description": g.Description,
				"target_date": g.TargetDate,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrGoalNotFound
		}

		var m GoalModel
		if err := tx.First(&m, g.ID).Error; err != nil {
			return err
		}
		*g = toEntity(m)
		return nil
	})
}

func (r *goalGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&GoalModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrGoalNotFound
	}
	return nil
}

func toEntity(m GoalModel) entity.Goal {
	return entity.Goal{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		TargetDate:  m.TargetDate,
		CreatedAt:   m.CreatedAt,
	}
}
