// Package adapters provides the gorm implementation of the travel history store.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"travel_journal/internal/feature/travelhistory/domain/entity"
	"travel_journal/internal/feature/travelhistory/usecase"
)

// TravelHistoryModel maps the travel_history table.
type TravelHistoryModel struct {
	ID          uint      `gorm:"column:history_id;primaryKey"`
	UserID      uint      `gorm:"column:user_id;not null;index"`
	Title       string    `gorm:"column:title;size:255;not null"`
	AreaName    string    `gorm:"column:area_name;size:255;not null"`
	Description string    `gorm:"column:description_of_area;type:text;not null;default:''"`
	Experiences string    `gorm:"column:experiences;type:text;not null;default:''"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time `gorm:"column:end_date;type:date;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (TravelHistoryModel) TableName() string {
	return "travel_history"
}

// TravelMediaModel maps the travel_media table.
type TravelMediaModel struct {
	ID        uint   `gorm:"column:media_id;primaryKey"`
	UserID    uint   `gorm:"column:user_id;not null"`
	HistoryID uint   `gorm:"column:history_id;not null;index"`
	MediaURL  string `gorm:"column:media_url;size:255;not null;uniqueIndex"`
	MediaType string `gorm:"column:media_type;size:16;not null;default:photo"`
}

func (TravelMediaModel) TableName() string {
	return "travel_media"
}

// historyRow is the scan target of the history ⋈ media query.
type historyRow struct {
	HistoryID   uint
	UserID      uint
	AccountName string
	Title       string
	AreaName    string
	Description string
	Experiences string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	MediaURL    *string
}

const historySelect = `th.history_id, th.user_id, u.account_name, th.title, th.area_name,
	th.description_of_area AS description, th.experiences, th.start_date, th.end_date,
	th.created_at, tm.media_url`

type travelHistoryGorm struct {
	db *gorm.DB
}

var _ usecase.HistoryRepository = (*travelHistoryGorm)(nil)

// NewTravelHistoryRepository returns the gorm-backed HistoryRepository.
func NewTravelHistoryRepository(db *gorm.DB) *travelHistoryGorm {
	return &travelHistoryGorm{db: db}
}

// RunInTx runs fn inside one database transaction.
func (r *travelHistoryGorm) RunInTx(ctx context.Context, fn func(tx usecase.HistoryTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&historyTx{db: tx})
	})
}

func (r *travelHistoryGorm) ListByUser(ctx context.Context, userID uint) ([]entity.HistoryRow, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("th.user_id = ?", userID))
}

func (r *travelHistoryGorm) ListAll(ctx context.Context) ([]entity.HistoryRow, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *travelHistoryGorm) ListByArea(ctx context.Context, area string) ([]entity.HistoryRow, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("LOWER(th.area_name) = LOWER(?)", area))
}

func (r *travelHistoryGorm) list(ctx context.Context, q *gorm.DB) ([]entity.HistoryRow, error) {
	var rows []historyRow
	err := q.Table("travel_history AS th").
		Select(historySelect).
		Joins("JOIN user_info u ON u.user_id = th.user_id").
		Joins("LEFT JOIN travel_media tm ON tm.history_id = th.history_id").
		Order("th.start_date DESC, th.history_id DESC, tm.media_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.HistoryRow, len(rows))
	for i, row := range rows {
		out[i] = entity.HistoryRow{
			Entry: entity.TravelEntry{
				ID:          row.HistoryID,
				UserID:      row.UserID,
				AccountName: row.AccountName,
				Title:       row.Title,
				AreaName:    row.AreaName,
				Description: row.Description,
				Experiences: row.Experiences,
				StartDate:   row.StartDate,
				EndDate:     row.EndDate,
				CreatedAt:   row.CreatedAt,
			},
			MediaName: row.MediaURL,
		}
	}
	return out, nil
}

// historyTx implements usecase.HistoryTx on a transaction handle.
type historyTx struct {
	db *gorm.DB
}

func (t *historyTx) CreateEntry(ctx context.Context, e *entity.TravelEntry) error {
	m := TravelHistoryModel{
		UserID:      e.UserID,
		Title:       e.Title,
		AreaName:    e.AreaName,
		Description: e.Description,
		Experiences: e.Experiences,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
	}
	if err := t.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	e.ID = m.ID
	e.CreatedAt = m.CreatedAt
	return nil
}

func (t *historyTx) AddMedia(ctx context.Context, a *entity.MediaAttachment) error {
	m := TravelMediaModel{
		UserID:    a.UserID,
		HistoryID: a.HistoryID,
		MediaURL:  a.Name,
		MediaType: a.MediaType,
	}
	if err := t.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	a.ID = m.ID
	return nil
}
