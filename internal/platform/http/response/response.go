// Package response writes the JSON envelope shared by every API endpoint:
// {"success": bool, ..., "timestamp": RFC3339}.
package response

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"travel_journal/internal/platform/db"
	"travel_journal/internal/shared/apperr"
)

// now is replaced in tests.
var now = time.Now

// OK writes a success envelope merging payload into the top level.
func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	body["timestamp"] = timestamp()
	c.JSON(status, body)
}

// Fail aborts the request with a failure envelope.
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":   false,
		"message":   message,
		"timestamp": timestamp(),
	})
}

// Error classifies err, logs it and aborts the request with the matching status.
// Internal errors caused by an unreachable store are reported as 503.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	ae, classified := apperr.As(err)
	if kind == apperr.KindInternal && db.IsUnavailable(err) {
		kind = apperr.KindInfrastructure
	}
	status := kind.HTTPStatus()

	body := gin.H{"success": false, "timestamp": timestamp()}
	switch {
	case classified:
		body["message"] = ae.Message
		if len(ae.Fields) > 0 {
			body["fields"] = ae.Fields
		}
		if ae.Err != nil {
			body["error"] = ae.Err.Error()
		}
	case kind == apperr.KindInfrastructure:
		body["message"] = "Database connection unavailable"
		body["error"] = err.Error()
	default:
		body["message"] = "Internal server error"
		body["error"] = err.Error()
	}

	attrs := []any{
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", status,
		"remote_addr", c.ClientIP(),
		"error", err,
	}
	if status >= 500 {
		slog.Error("request failed", attrs...)
	} else {
		slog.Warn("request rejected", attrs...)
	}

	c.AbortWithStatusJSON(status, body)
}

func timestamp() string {
	return now().UTC().Format(time.RFC3339)
}
