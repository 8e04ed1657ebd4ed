// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusReporter reports the last known database state without touching it.
// Implemented by *db.Supervisor.
type StatusReporter interface {
	Healthy() bool
}

// Health serves /healthz. The process is live as long as it answers; the
// database state is reported but does not change the status code.
func Health(db StatusReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			database := "up"
			if db != nil && !db.Healthy() {
				database = "down"
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok", "database": database})
		}
	}
}
