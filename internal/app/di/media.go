// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"
	"io"

	infrahttp "travel_journal/internal/platform/http"
	"travel_journal/internal/platform/mediastore"
)

// MediaStore is the union of what the write path and the media handler need.
type MediaStore interface {
	Save(ctx context.Context, name, contentType string, size int64, body io.Reader) error
	Delete(ctx context.Context, name string) error
	Open(ctx context.Context, name string) (io.ReadCloser, mediastore.ObjectInfo, error)
}

// NewMediaStore creates the media store selected by cfg.Backend.
// The S3 backend gets its own HTTP client bounded by cfg.S3Timeout.
func NewMediaStore(ctx context.Context, cfg mediastore.Config) (MediaStore, error) {
	switch cfg.Backend {
	case "", mediastore.BackendLocal:
		return mediastore.NewLocalStore(cfg.Dir)
	case mediastore.BackendS3:
		httpClient := infrahttp.NewHTTPClient(cfg.S3Timeout)
		return mediastore.NewS3Store(ctx, cfg, httpClient)
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.Backend)
	}
}
