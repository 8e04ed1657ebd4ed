package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"travel_journal/internal/feature/auth/domain/entity"
	"travel_journal/internal/shared/apperr"
)

// UserRepository abstracts the persistence layer for user entities.
// Interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrDuplicateUser when the email or
	// the account name is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Taken reports which of email and accountName are already registered.
	Taken(ctx context.Context, email, accountName string) (emailTaken, nameTaken bool, err error)
}

// JWTGenerator issues access tokens.
type JWTGenerator interface {
	GenerateToken(userID uint, accountName string) (string, error)
}

// SignupInput is a registration request.
type SignupInput struct {
	AccountName string
	Email       string
	Password    string
	Age         *int
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// Signup registers a user with a bcrypt-hashed password.
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	in.AccountName = strings.TrimSpace(in.AccountName)
	in.Email = strings.TrimSpace(in.Email)

	var missing []string
	if in.AccountName == "" {
		missing = append(missing, "accountName")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apperr.Validation("All required fields must be provided", missing...)
	}

	if err := u.checkAvailable(ctx, in.Email, in.AccountName); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		AccountName: in.AccountName,
		Email:       in.Email,
		Password:    string(hashed),
		Age:         in.Age,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			// lost a race with a concurrent signup
			if cerr := u.checkAvailable(ctx, in.Email, in.AccountName); cerr != nil {
				return nil, cerr
			}
			return nil, ErrEmailAlreadyExists
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Registration failed", err)
	}

	slog.Info("user signup successful", "user_id", user.ID, "account_name", user.AccountName)
	return user, nil
}

func (u *authUsecase) checkAvailable(ctx context.Context, email, accountName string) error {
	emailTaken, nameTaken, err := u.users.Taken(ctx, email, accountName)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Registration failed", err)
	}
	switch {
	case emailTaken:
		return ErrEmailAlreadyExists
	case nameTaken:
		return ErrAccountNameTaken
	}
	return nil
}

// Login authenticates a user and returns the profile with a signed token.
// The bcrypt comparison runs even for unknown emails to keep timing uniform.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, "", apperr.Wrap(apperr.KindInternal, "Database error", err)
	}

	// dummy hash for unknown users
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.AccountName)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return user, token, nil
}

// Profile returns the user with the given id.
func (u *authUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindInternal, "Database error", err)
	}
	return user, nil
}
