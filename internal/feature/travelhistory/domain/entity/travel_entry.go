// Package entity defines the domain models for the travel history feature.
package entity

import (
	"io"
	"time"
)

// MediaTypePhoto is the only media type recorded for uploads.
const MediaTypePhoto = "photo"

// TravelEntry is one recorded trip owned by a user.
type TravelEntry struct {
	ID          uint
	UserID      uint
	AccountName string // owner's display name, filled on reads
	Title       string
	AreaName    string
	Description string
	Experiences string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
}

// MediaAttachment is one stored image belonging to a TravelEntry.
type MediaAttachment struct {
	ID        uint
	UserID    uint
	HistoryID uint
	Name      string // stored file name, unique
	MediaType string
}

// HistoryRow is one row of travel_history LEFT JOIN travel_media.
// MediaName is nil for an entry without media.
type HistoryRow struct {
	Entry     TravelEntry
	MediaName *string
}

// TravelView is an entry with the public URLs of its media, in insertion order.
type TravelView struct {
	TravelEntry
	Media []string
}

// Upload is an accepted image waiting to be persisted.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}
