package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel_journal/internal/platform/http/response"
	"travel_journal/internal/platform/mediastore"
)

// MediaOpener reads stored media by name.
type MediaOpener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, mediastore.ObjectInfo, error)
}

// MediaHandler serves stored uploads under the public media prefix.
type MediaHandler struct {
	store MediaOpener
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(store MediaOpener) *MediaHandler {
	return &MediaHandler{store: store}
}

// Serve handles GET /uploads/:name.
func (h *MediaHandler) Serve(c *gin.Context) {
	rc, info, err := h.store.Open(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, mediastore.ErrNotFound) || errors.Is(err, mediastore.ErrInvalidName) {
			response.Fail(c, http.StatusNotFound, "Media not found")
			return
		}
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.Header("Cache-Control", "public, max-age=86400, immutable")
	c.Header("X-Content-Type-Options", "nosniff")
	size := info.Size
	if size <= 0 {
		size = -1
	}
	c.DataFromReader(http.StatusOK, size, info.ContentType, rc, nil)
}
