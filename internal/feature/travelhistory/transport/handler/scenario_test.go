package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_journal/internal/feature/travelhistory/adapters"
	"travel_journal/internal/feature/travelhistory/usecase"
	"travel_journal/internal/platform/db/dbtest"
	"travel_journal/internal/platform/mediastore"
)

// TestScenario_SubmitThenRead runs the full stack against SQLite and a
// temporary media directory.
func TestScenario_SubmitThenRead(t *testing.T) {
	t.Parallel()

	db := dbtest.NewSQLite(t, &dbtest.User{}, &adapters.TravelHistoryModel{}, &adapters.TravelMediaModel{})
	userID := dbtest.SeedUser(t, db, "alice")
	require.Equal(t, uint(1), userID)

	store, err := mediastore.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	uc := usecase.NewTravelHistoryUsecase(adapters.NewTravelHistoryRepository(db), store, "/uploads")

	r := newRouter(uc)
	r.GET("/uploads/:name", NewMediaHandler(store).Serve)

	body, ct := multipartBody(t, map[string]string{
		"userID":    "1",
		"title":     "Trip",
		"area_name": "Lahore",
		"startDate": "2024-01-01",
		"endDate":   "2024-01-05",
	},
		formFile{"photo.png", "image/png", []byte("first")},
		formFile{"photo.png", "image/png", []byte("second")},
	)
	req := httptest.NewRequest(http.MethodPost, "/travel-history", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	historyID := decode(t, w)["historyId"]

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/travel-history/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	travels := decode(t, w)["travels"].([]any)
	require.Len(t, travels, 1)
	travel := travels[0].(map[string]any)
	assert.Equal(t, historyID, travel["history_id"])
	assert.Equal(t, "alice", travel["accountName"])
	media := travel["media"].([]any)
	require.Len(t, media, 2)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	for i, want := range []string{"first", "second"} {
		url := media[i].(string)
		require.True(t, strings.HasPrefix(url, "/uploads/"), url)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		require.Equal(t, http.StatusOK, w.Code, url)
		assert.Equal(t, want, w.Body.String(), fmt.Sprintf("media %d", i))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/travel-history-by-country?area_name=Islamabad", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["travels"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/travel-history-by-country?area_name=", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaHandler_NotFound(t *testing.T) {
	t.Parallel()

	store, err := mediastore.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	r := gin.New()
	r.GET("/uploads/:name", NewMediaHandler(store).Serve)

	for _, name := range []string{"missing.png", "..%2Fsecret"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/"+name, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, name)
	}
}
