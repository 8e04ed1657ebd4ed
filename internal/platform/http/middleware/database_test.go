package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubChecker struct {
	healthy bool
	err     error
	checks  int
}

func (s *stubChecker) Healthy() bool { return s.healthy }

func (s *stubChecker) Check(context.Context) error {
	s.checks++
	return s.err
}

func TestRequireDatabase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		healthy     bool
		checkErr    error
		wantStatus  int
		wantReached bool
		wantChecks  int
	}{
		{name: "healthy skips the ping", healthy: true, wantStatus: http.StatusOK, wantReached: true},
		{name: "recovered on ping", wantStatus: http.StatusOK, wantReached: true, wantChecks: 1},
		{name: "unreachable", checkErr: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable, wantChecks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reached := false
			r := gin.New()
			checker := &stubChecker{healthy: tt.healthy, err: tt.checkErr}
			r.Use(RequireDatabase(checker))
			r.GET("/travel-history", func(c *gin.Context) {
				reached = true
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/travel-history", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantReached, reached)
			assert.Equal(t, tt.wantChecks, checker.checks)
			if tt.checkErr != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "Database connection unavailable", body["message"])
			}
		})
	}
}
