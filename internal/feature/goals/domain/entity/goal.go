package entity

import "time"

// Goal is a future trip a user plans to take.
type Goal struct {
	ID          uint
	UserID      uint
	AccountName string
	Title       string
	Description string
	TargetDate  *time.Time
	CreatedAt   time.Time
}
