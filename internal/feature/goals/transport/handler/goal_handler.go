// Package handler provides the HTTP handlers of the future goals feature.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"travel_journal/internal/feature/goals/domain/entity"
	"travel_journal/internal/feature/goals/transport/http/dto"
	"travel_journal/internal/feature/goals/usecase"
	"travel_journal/internal/platform/http/response"
	"travel_journal/internal/shared/apperr"
)

type GoalUsecase interface {
	Create(ctx context.Context, in usecase.GoalInput) (*entity.Goal, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Goal, error)
	Update(ctx context.Context, id uint, in usecase.GoalInput) (*entity.Goal, error)
	Delete(ctx context.Context, id uint) error
}

type GoalHandler struct {
	uc GoalUsecase
}

func NewGoalHandler(uc GoalUsecase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

// Create handles POST /future-goals.
func (h *GoalHandler) Create(c *gin.Context) {
	var req dto.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request body"))
		return
	}

	g, err := h.uc.Create(c.Request.Context(), toInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"message": "Future goal added",
		"goal":    toResponse(*g),
	})
}

// List handles GET /future-goals/:userID.
func (h *GoalHandler) List(c *gin.Context) {
	id, ok := pathID(c, "userID", "Invalid user ID")
	if !ok {
		return
	}
	goals, err := h.uc.ListByUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, toResponse(g))
	}
	response.OK(c, http.StatusOK, gin.H{"goals": out})
}

// Update handles PUT /future-goals/:goalID.
func (h *GoalHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "goalID", "Invalid goal ID")
	if !ok {
		return
	}
	var req dto.GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request body"))
		return
	}

	g, err := h.uc.Update(c.Request.Context(), id, toInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{
		"message": "Future goal updated",
		"goal":    toResponse(*g),
	})
}

// Delete handles DELETE /future-goals/:goalID.
func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "goalID", "Invalid goal ID")
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"message": "Future goal deleted"})
}

// pathID parses a positive numeric path parameter, answering 400 otherwise.
func pathID(c *gin.Context, param, msg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperr.Validation(msg, param))
		return 0, false
	}
	return uint(id), true
}

func toInput(req dto.GoalRequest) usecase.GoalInput {
	return usecase.GoalInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
	}
}

func toResponse(g entity.Goal) dto.GoalResponse {
	var target *string
	if g.TargetDate != nil {
		s := g.TargetDate.Format(usecase.DateLayout)
		target = &s
	}
	return dto.GoalResponse{
		GoalID:      g.ID,
		UserID:      g.UserID,
		AccountName: g.AccountName,
		Title:       g.Title,
		Description: g.Description,
		TargetDate:  target,
		CreatedAt:   g.CreatedAt.UTC().Format(time.RFC3339),
	}
}
