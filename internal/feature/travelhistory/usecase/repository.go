// Package usecase implements the travel history write coordinator and read paths.
package usecase

import (
	"context"
	"io"

	"travel_journal/internal/feature/travelhistory/domain/entity"
)

// HistoryReader runs the history ⋈ media queries. Rows come back ordered by
// start date descending, then entry id descending, then media id ascending.
type HistoryReader interface {
	ListByUser(ctx context.Context, userID uint) ([]entity.HistoryRow, error)
	ListAll(ctx context.Context) ([]entity.HistoryRow, error)
	// ListByArea matches area case-insensitively and exactly.
	ListByArea(ctx context.Context, area string) ([]entity.HistoryRow, error)
}

// HistoryTx is the set of writes available inside one transaction.
type HistoryTx interface {
	// CreateEntry inserts e and sets e.ID.
	CreateEntry(ctx context.Context, e *entity.TravelEntry) error
	// AddMedia inserts m and sets m.ID.
	AddMedia(ctx context.Context, m *entity.MediaAttachment) error
}

// HistoryWriter opens transactions. fn's writes are committed when it returns
// nil and rolled back otherwise.
type HistoryWriter interface {
	RunInTx(ctx context.Context, fn func(tx HistoryTx) error) error
}

// HistoryRepository is the full store contract of the feature.
type HistoryRepository interface {
	HistoryReader
	HistoryWriter
}

// MediaStore persists uploaded files by name.
type MediaStore interface {
	Save(ctx context.Context, name, contentType string, size int64, body io.Reader) error
	Delete(ctx context.Context, name string) error
}
