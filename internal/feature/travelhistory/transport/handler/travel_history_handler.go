// Package handler provides the HTTP handlers of the travel history feature.
package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"travel_journal/internal/feature/travelhistory/domain/entity"
	"travel_journal/internal/feature/travelhistory/transport/http/dto"
	"travel_journal/internal/feature/travelhistory/usecase"
	"travel_journal/internal/platform/http/response"
	"travel_journal/internal/shared/apperr"
)

// imagesField is the multipart field carrying uploaded images.
const imagesField = "images"

// TravelHistoryUsecase is the behaviour the handler needs from the usecase layer.
type TravelHistoryUsecase interface {
	Submit(ctx context.Context, in usecase.SubmitInput, uploads []entity.Upload) (uint, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.TravelView, error)
	ListAll(ctx context.Context) ([]entity.TravelView, error)
	ListByArea(ctx context.Context, area string) ([]entity.TravelView, error)
}

// TravelHistoryHandler serves the travel history endpoints.
type TravelHistoryHandler struct {
	uc TravelHistoryUsecase
}

// NewTravelHistoryHandler creates a TravelHistoryHandler.
func NewTravelHistoryHandler(uc TravelHistoryUsecase) *TravelHistoryHandler {
	return &TravelHistoryHandler{uc: uc}
}

// Submit handles POST /travel-history (multipart/form-data).
func (h *TravelHistoryHandler) Submit(c *gin.Context) {
	var req dto.SubmitTravelRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid form data"))
		return
	}

	in := usecase.SubmitInput{
		Title:       req.Title,
		AreaName:    req.AreaName,
		Description: req.Description,
		Experiences: req.Experiences,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if s := strings.TrimSpace(req.UserID); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil || id == 0 {
			response.Error(c, apperr.Validation("Invalid user ID", "userID"))
			return
		}
		in.UserID = uint(id)
	}

	uploads, err := formUploads(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.uc.Submit(c.Request.Context(), in, uploads)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusCreated, gin.H{
		"message":   "Entry created successfully",
		"historyId": id,
	})
}

// formUploads collects the files of the images field. A request without a
// multipart body carries no files.
func formUploads(c *gin.Context) ([]entity.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperr.Validation("Invalid multipart body", imagesField)
	}

	files := form.File[imagesField]
	uploads := make([]entity.Upload, 0, len(files))
	for _, fh := range files {
		uploads = append(uploads, entity.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open:        opener(fh),
		})
	}
	return uploads, nil
}

func opener(fh *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return fh.Open()
	}
}

// ListByUser handles GET /travel-history/:userID.
func (h *TravelHistoryHandler) ListByUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("userID"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperr.Validation("Invalid user ID", "userID"))
		return
	}
	travels, err := h.uc.ListByUser(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"travels": toResponses(travels)})
}

// ListAll handles GET /travel-history.
func (h *TravelHistoryHandler) ListAll(c *gin.Context) {
	travels, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"travels": toResponses(travels)})
}

// ListByArea handles GET /travel-history-by-country?area_name= and its
// /travel-history-by-area alias.
func (h *TravelHistoryHandler) ListByArea(c *gin.Context) {
	travels, err := h.uc.ListByArea(c.Request.Context(), c.Query("area_name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"travels": toResponses(travels)})
}

func toResponses(in []entity.TravelView) []dto.TravelResponse {
	out := make([]dto.TravelResponse, 0, len(in))
	for _, v := range in {
		media := v.Media
		if media == nil {
			media = []string{}
		}
		out = append(out, dto.TravelResponse{
			HistoryID:         v.ID,
			UserID:            v.UserID,
			AccountName:       v.AccountName,
			Title:             v.Title,
			AreaName:          v.AreaName,
			DescriptionOfArea: v.Description,
			Experiences:       v.Experiences,
			StartDate:         v.StartDate.Format(usecase.DateLayout),
			EndDate:           v.EndDate.Format(usecase.DateLayout),
			CreatedAt:         v.CreatedAt.UTC().Format(time.RFC3339),
			Media:             media,
		})
	}
	return out
}
