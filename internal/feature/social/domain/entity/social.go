package entity

import "time"

// Like records that a user liked a travel entry. A user likes an entry at
// most once.
type Like struct {
	ID          uint
	UserID      uint
	HistoryID   uint
	AccountName string
	CreatedAt   time.Time
}

// Comment is a remark left by a user on a travel entry.
type Comment struct {
	ID          uint
	UserID      uint
	HistoryID   uint
	AccountName string
	Text        string
	CreatedAt   time.Time
}
