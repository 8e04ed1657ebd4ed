package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// User maps the user_info columns that other features join against.
type User struct {
	ID          uint   `gorm:"column:user_id;primaryKey"`
	AccountName string `gorm:"column:account_name;size:50;not null;uniqueIndex"`
	Email       string `gorm:"column:user_email;size:100;not null;uniqueIndex"`
	Password    string `gorm:"column:user_password;size:255;not null"`
}

func (User) TableName() string { return "user_info" }

// SeedUser inserts a user named accountName and returns its id.
func SeedUser(t *testing.T, db *gorm.DB, accountName string) uint {
	t.Helper()

	u := &User{AccountName: accountName, Email: accountName + "@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error, "failed to seed user")
	return u.ID
}
