package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_journal/internal/feature/travelhistory/domain/entity"
	"travel_journal/internal/feature/travelhistory/usecase"
	"travel_journal/internal/shared/apperr"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockTravelHistoryUsecase is a function-field TravelHistoryUsecase.
type mockTravelHistoryUsecase struct {
	SubmitFunc     func(ctx context.Context, in usecase.SubmitInput, uploads []entity.Upload) (uint, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]entity.TravelView, error)
	ListAllFunc    func(ctx context.Context) ([]entity.TravelView, error)
	ListByAreaFunc func(ctx context.Context, area string) ([]entity.TravelView, error)
}

func (m *mockTravelHistoryUsecase) Submit(ctx context.Context, in usecase.SubmitInput, uploads []entity.Upload) (uint, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, in, uploads)
	}
	return 1, nil
}

func (m *mockTravelHistoryUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.TravelView, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockTravelHistoryUsecase) ListAll(ctx context.Context) ([]entity.TravelView, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTravelHistoryUsecase) ListByArea(ctx context.Context, area string) ([]entity.TravelView, error) {
	if m.ListByAreaFunc != nil {
		return m.ListByAreaFunc(ctx, area)
	}
	return nil, nil
}

type formFile struct {
	name        string
	contentType string
	data        []byte
}

// multipartBody encodes fields and files as multipart/form-data.
func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="images"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func newRouter(uc TravelHistoryUsecase) *gin.Engine {
	h := NewTravelHistoryHandler(uc)
	r := gin.New()
	r.POST("/travel-history", h.Submit)
	r.GET("/travel-history", h.ListAll)
	r.GET("/travel-history/:userID", h.ListByUser)
	r.GET("/travel-history-by-country", h.ListByArea)
	r.GET("/travel-history-by-area", h.ListByArea)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestTravelHistoryHandler_Submit(t *testing.T) {
	t.Parallel()

	var gotIn usecase.SubmitInput
	var gotUploads []entity.Upload
	var gotContent [][]byte
	uc := &mockTravelHistoryUsecase{
		SubmitFunc: func(_ context.Context, in usecase.SubmitInput, uploads []entity.Upload) (uint, error) {
			gotIn, gotUploads = in, uploads
			for _, up := range uploads {
				rc, err := up.Open()
				require.NoError(t, err)
				b, _ := io.ReadAll(rc)
				_ = rc.Close()
				gotContent = append(gotContent, b)
			}
			return 42, nil
		},
	}

	body, ct := multipartBody(t, map[string]string{
		"userID":      "1",
		"title":       "Trip",
		"area_name":   "Lahore",
		"description": "walled city",
		"startDate":   "2024-01-01",
		"endDate":     "2024-01-05",
	},
		formFile{"a.png", "image/png", []byte("png-a")},
		formFile{"b.jpg", "image/jpeg", []byte("jpeg-b")},
	)
	req := httptest.NewRequest(http.MethodPost, "/travel-history", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(42), resp["historyId"])

	assert.Equal(t, usecase.SubmitInput{
		UserID:      1,
		Title:       "Trip",
		AreaName:    "Lahore",
		Description: "walled city",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-05",
	}, gotIn)
	require.Len(t, gotUploads, 2)
	assert.Equal(t, "a.png", gotUploads[0].Filename)
	assert.Equal(t, "image/png", gotUploads[0].ContentType)
	assert.Equal(t, int64(5), gotUploads[0].Size)
	assert.Equal(t, [][]byte{[]byte("png-a"), []byte("jpeg-b")}, gotContent)
}

func TestTravelHistoryHandler_SubmitErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fields      map[string]string
		submitErr   error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "non-numeric user id",
			fields:      map[string]string{"userID": "abc", "title": "t"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid user ID",
		},
		{
			name:        "missing fields from usecase",
			fields:      map[string]string{"title": "t"},
			submitErr:   apperr.MissingFields("userID", "area_name", "startDate", "endDate"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Missing required fields: userID, area_name, startDate, endDate",
		},
		{
			name:        "store failure",
			fields:      map[string]string{"userID": "1"},
			submitErr:   apperr.Wrap(apperr.KindInternal, "Submission failed", errors.New("deadlock detected")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Submission failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &mockTravelHistoryUsecase{
				SubmitFunc: func(context.Context, usecase.SubmitInput, []entity.Upload) (uint, error) {
					return 0, tt.submitErr
				},
			}
			body, ct := multipartBody(t, tt.fields)
			req := httptest.NewRequest(http.MethodPost, "/travel-history", body)
			req.Header.Set("Content-Type", ct)
			w := httptest.NewRecorder()
			newRouter(uc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decode(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, tt.wantMessage, resp["message"])
		})
	}
}

func TestTravelHistoryHandler_ListByUser(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := &mockTravelHistoryUsecase{
		ListByUserFunc: func(_ context.Context, userID uint) ([]entity.TravelView, error) {
			return []entity.TravelView{{
				TravelEntry: entity.TravelEntry{ID: 9, UserID: userID, Title: "Trip", AreaName: "Lahore", StartDate: start, EndDate: start.AddDate(0, 0, 4)},
				Media:       []string{"/uploads/a.png", "/uploads/b.png"},
			}}, nil
		},
	}

	w := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/travel-history/1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	travels := resp["travels"].([]any)
	require.Len(t, travels, 1)
	travel := travels[0].(map[string]any)
	assert.Equal(t, float64(9), travel["history_id"])
	assert.Equal(t, float64(1), travel["userID"])
	assert.Equal(t, "2024-01-01", travel["startDate"])
	assert.Equal(t, "2024-01-05", travel["end_date"])
	assert.Len(t, travel["media"], 2)
}

func TestTravelHistoryHandler_ListByUserInvalidID(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"abc", "0", "-1"} {
		w := httptest.NewRecorder()
		newRouter(&mockTravelHistoryUsecase{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/travel-history/"+id, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
}

func TestTravelHistoryHandler_ListByArea(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/travel-history-by-country", "/travel-history-by-area"} {
		var gotArea string
		uc := &mockTravelHistoryUsecase{
			ListByAreaFunc: func(_ context.Context, area string) ([]entity.TravelView, error) {
				gotArea = area
				return nil, nil
			},
		}

		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, path+"?area_name=Lahore", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Lahore", gotArea)
		assert.JSONEq(t, `[]`, string(mustMarshal(t, decode(t, w)["travels"])))
	}
}

func TestTravelHistoryHandler_ListAllError(t *testing.T) {
	t.Parallel()

	uc := &mockTravelHistoryUsecase{
		ListAllFunc: func(context.Context) ([]entity.TravelView, error) {
			return nil, apperr.Wrap(apperr.KindInternal, "Failed to fetch travel history", errors.New("boom"))
		},
	}
	w := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/travel-history", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom", decode(t, w)["error"])
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
