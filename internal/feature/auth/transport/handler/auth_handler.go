// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel_journal/internal/feature/auth/domain/entity"
	"travel_journal/internal/feature/auth/transport/http/dto"
	"travel_journal/internal/feature/auth/usecase"
	jwtmw "travel_journal/internal/platform/jwt"
	"travel_journal/internal/platform/http/response"
	"travel_journal/internal/shared/apperr"
)

// AuthUsecase defines the authentication operations the handler needs.
// Interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Profile(ctx context.Context, userID uint) (*entity.User, error)
}

// AuthHandler handles signup, login and profile requests.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /signup.
// - 400 when a required field is missing
// - 409 when the email or account name is taken
// - 201 with the new user's id and account name
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, apperr.Validation("Invalid request body"))
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		AccountName: req.AccountName,
		Email:       req.Email,
		Password:    req.Password,
		Age:         req.Age,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"user": dto.CreatedUser{UserID: user.ID, AccountName: user.AccountName},
	})
}

// Login handles POST /login.
// - 400 when email or password is absent
// - 401 for unknown email or wrong password
// - 200 with the user's profile and an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, apperr.Validation("Email and password are required", "email", "password"))
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	response.OK(c, http.StatusOK, gin.H{"user": toProfile(user), "token": token})
}

// Me handles GET /me for a bearer-authenticated caller.
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := jwtmw.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "missing bearer token")
		return
	}
	user, err := h.auth.Profile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"user": toProfile(user)})
}

func toProfile(u *entity.User) dto.UserProfile {
	return dto.UserProfile{
		UserID:                      u.ID,
		AccountName:                 u.AccountName,
		UserEmail:                   u.Email,
		UserAge:                     u.Age,
		LastTrip:                    u.LastTrip,
		NumOfCitiesTravelled:        u.CitiesTravelled,
		NumOfForeignCitiesTravelled: u.ForeignCitiesTravelled,
	}
}
