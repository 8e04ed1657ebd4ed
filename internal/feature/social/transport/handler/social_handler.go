// Package handler provides the HTTP handlers for likes and comments.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"travel_journal/internal/feature/social/domain/entity"
	"travel_journal/internal/feature/social/transport/http/dto"
	"travel_journal/internal/platform/http/response"
	"travel_journal/internal/shared/apperr"
)

type SocialUsecase interface {
	Like(ctx context.Context, userID, historyID uint) (*entity.Like, error)
	Likes(ctx context.Context, historyID uint) ([]entity.Like, error)
	Comment(ctx context.Context, userID, historyID uint, text string) (*entity.Comment, error)
	Comments(ctx context.Context, historyID uint) ([]entity.Comment, error)
}

type SocialHandler struct {
	uc SocialUsecase
}

func NewSocialHandler(uc SocialUsecase) *SocialHandler {
	return &SocialHandler{uc: uc}
}

// Like handles POST /likes.
func (h *SocialHandler) Like(c *gin.Context) {
	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request body"))
		return
	}

	l, err := h.uc.Like(c.Request.Context(), req.UserID, req.HistoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"message": "Like added successfully",
		"like":    likeResponse(*l),
	})
}

// Likes handles GET /likes/:history_id.
func (h *SocialHandler) Likes(c *gin.Context) {
	id, ok := historyID(c)
	if !ok {
		return
	}
	likes, err := h.uc.Likes(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.LikeResponse, 0, len(likes))
	for _, l := range likes {
		out = append(out, likeResponse(l))
	}
	response.OK(c, http.StatusOK, gin.H{"likes": out})
}

// Comment handles POST /comments.
func (h *SocialHandler) Comment(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request body"))
		return
	}

	cm, err := h.uc.Comment(c.Request.Context(), req.UserID, req.HistoryID, req.CommentText)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": commentResponse(*cm),
	})
}

// Comments handles GET /comments/:history_id.
func (h *SocialHandler) Comments(c *gin.Context) {
	id, ok := historyID(c)
	if !ok {
		return
	}
	comments, err := h.uc.Comments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, commentResponse(cm))
	}
	response.OK(c, http.StatusOK, gin.H{"comments": out})
}

func historyID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("history_id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperr.Validation("Invalid history ID", "history_id"))
		return 0, false
	}
	return uint(id), true
}

func likeResponse(l entity.Like) dto.LikeResponse {
	return dto.LikeResponse{
		LikeID:      l.ID,
		UserID:      l.UserID,
		HistoryID:   l.HistoryID,
		AccountName: l.AccountName,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func commentResponse(cm entity.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		CommentID:   cm.ID,
		UserID:      cm.UserID,
		HistoryID:   cm.HistoryID,
		AccountName: cm.AccountName,
		CommentText: cm.Text,
		CreatedAt:   cm.CreatedAt.UTC().Format(time.RFC3339),
	}
}
