// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travel_journal/internal/feature/auth/domain/entity"
	"travel_journal/internal/feature/auth/usecase"
	"travel_journal/internal/platform/db"
)

// userGorm implements usecase.UserRepository with GORM.
type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a userGorm on the given connection.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. Unique violations on email or account name
// surface as usecase.ErrDuplicateUser.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrDuplicateUser
		}
		return err
	}
	return nil
}

// FindByEmail returns usecase.ErrUserNotFound when no user matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("user_email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID returns usecase.ErrUserNotFound when no user matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Taken reports which of email and accountName are registered.
func (r *userGorm) Taken(ctx context.Context, email, accountName string) (bool, bool, error) {
	var rows []entity.User
	err := r.db.WithContext(ctx).
		Select("user_email", "account_name").
		Where("user_email = ? OR account_name = ?", email, accountName).
		Find(&rows).Error
	if err != nil {
		return false, false, err
	}

	var emailTaken, nameTaken bool
	for _, u := range rows {
		emailTaken = emailTaken || u.Email == email
		nameTaken = nameTaken || u.AccountName == accountName
	}
	return emailTaken, nameTaken, nil
}
