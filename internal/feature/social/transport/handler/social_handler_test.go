package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_journal/internal/feature/social/adapters"
	"travel_journal/internal/feature/social/usecase"
	"travel_journal/internal/platform/db/dbtest"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newRouter(t *testing.T) (*gin.Engine, uint) {
	t.Helper()

	db := dbtest.NewSQLite(t, &dbtest.User{}, &adapters.LikeModel{}, &adapters.CommentModel{})
	userID := dbtest.SeedUser(t, db, "alice")
	repo := adapters.NewSocialRepository(db)
	h := NewSocialHandler(usecase.NewSocialUsecase(repo, repo))

	r := gin.New()
	r.POST("/likes", h.Like)
	r.GET("/likes/:history_id", h.Likes)
	r.POST("/comments", h.Comment)
	r.GET("/comments/:history_id", h.Comments)
	return r, userID
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSocialHandler_ConcurrentLikes(t *testing.T) {
	t.Parallel()

	r, userID := newRouter(t)

	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i := range codes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i] = postJSON(r, "/likes", gin.H{"userID": userID, "history_id": 7}).Code
		}()
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)

	w := get(r, "/likes/7")
	require.Equal(t, http.StatusOK, w.Code)
	likes := decode(t, w)["likes"].([]any)
	require.Len(t, likes, 1)
	assert.Equal(t, "alice", likes[0].(map[string]any)["accountName"])
}

func TestSocialHandler_DuplicateLikeMessage(t *testing.T) {
	t.Parallel()

	r, userID := newRouter(t)

	w := postJSON(r, "/likes", gin.H{"userID": userID, "history_id": 7})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Like added successfully", body["message"])
	like := body["like"].(map[string]any)
	assert.NotZero(t, like["like_id"])
	assert.EqualValues(t, 7, like["history_id"])

	w = postJSON(r, "/likes", gin.H{"userID": userID, "history_id": 7})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User has already liked this travel entry", decode(t, w)["message"])
}

func TestSocialHandler_Comments(t *testing.T) {
	t.Parallel()

	r, userID := newRouter(t)

	w := postJSON(r, "/comments", gin.H{"userID": userID, "history_id": 3, "comment_text": "Lovely"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	comment := decode(t, w)["comment"].(map[string]any)
	assert.Equal(t, "alice", comment["accountName"])
	assert.Equal(t, "Lovely", comment["comment_text"])
	assert.NotZero(t, comment["comment_id"])

	w = postJSON(r, "/comments", gin.H{"userID": userID, "history_id": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []any{"comment_text"}, decode(t, w)["fields"])

	w = get(r, "/comments/3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["comments"].([]any), 1)

	w = get(r, "/comments/zero")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
