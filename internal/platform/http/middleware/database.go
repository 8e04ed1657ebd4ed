// Package middleware holds gin middleware shared across features.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel_journal/internal/platform/http/response"
)

// HealthChecker reports database reachability. Implemented by *db.Supervisor.
type HealthChecker interface {
	// Healthy returns the last known state without touching the database.
	Healthy() bool
	Check(ctx context.Context) error
}

// RequireDatabase rejects requests with 503 while the database cannot be
// reached. The database is only pinged while it is marked unhealthy, so a
// restored connection is picked up without waiting for the next background
// check.
func RequireDatabase(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !checker.Healthy() {
			if err := checker.Check(c.Request.Context()); err != nil {
				response.Fail(c, http.StatusServiceUnavailable, "Database connection unavailable")
				return
			}
		}
		c.Next()
	}
}
