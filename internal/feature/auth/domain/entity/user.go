// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered traveller.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"column:user_id;primaryKey"`

	// AccountName is the public display name. It must be unique across all users.
	AccountName string `gorm:"column:account_name;size:50;not null;uniqueIndex"`

	// Email is used to log in. It must be unique across all users.
	Email string `gorm:"column:user_email;size:100;not null;uniqueIndex"`

	// Password is the bcrypt hash of the user's password.
	Password string `gorm:"column:user_password;size:255;not null"`

	Age      *int    `gorm:"column:user_age"`
	LastTrip *string `gorm:"column:last_trip;size:255"`

	// Travel counters are maintained outside this service.
	CitiesTravelled        int `gorm:"column:num_of_cities_travelled;not null;default:0"`
	ForeignCitiesTravelled int `gorm:"column:num_of_foreign_cities_travelled;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName maps User to the user_info table.
func (User) TableName() string {
	return "user_info"
}
