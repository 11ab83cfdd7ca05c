package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/mock"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/internal/service"
	"github.com/MKhiriev/go-read-sync/internal/store"
	"github.com/MKhiriev/go-read-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newSyncRouter собирает полный роутер поверх мокнутого сервиса, чтобы
// запросы проходили через все middleware как в бою.
func newSyncRouter(t *testing.T) (*syncRouter, *mock.MockSyncService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	syncSvc := mock.NewMockSyncService(ctrl)

	h := NewHandler(&service.Services{SyncService: syncSvc}, registry.Default(), logger.Nop())
	return &syncRouter{h.Init()}, syncSvc
}

type syncRouter struct {
	http.Handler
}

func (router *syncRouter) do(t *testing.T, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var deviceHeaders = map[string]string{"X-Device-ID": "dev-a"}

// ─────────────────────────────────────────────
// GET /api/sync/{table}
// ─────────────────────────────────────────────

func TestPullRows_Success(t *testing.T) {
	router, syncSvc := newSyncRouter(t)

	items := []models.SyncRow{{ID: "b1", HLC: "0000000000010-00000-dev-b", ServerTimestamp: 7}}
	syncSvc.EXPECT().
		PullRows(gomock.Any(), store.PullQuery{
			Table:         "books",
			UserID:        1,
			Since:         5,
			EntityID:      "",
			ExcludeDevice: "dev-a",
			Limit:         10,
		}).
		Return(models.PullResponse{Items: items, ServerTimestamp: 7}, nil)

	rec := router.do(t, http.MethodGet, "/api/sync/books?since=5&limit=10", nil, deviceHeaders)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.PullResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ServerTimestamp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "b1", resp.Items[0].ID)
}

func TestPullRows_EntityScopeAndUserHeader(t *testing.T) {
	router, syncSvc := newSyncRouter(t)

	syncSvc.EXPECT().
		PullRows(gomock.Any(), store.PullQuery{
			Table:         "annotations",
			UserID:        42,
			EntityID:      "book-9",
			ExcludeDevice: "dev-a",
		}).
		Return(models.PullResponse{}, nil)

	rec := router.do(t, http.MethodGet, "/api/sync/annotations?entityId=book-9", nil, map[string]string{
		"X-Device-ID": "dev-a",
		"X-User-ID":   "42",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPullRows_MissingDeviceIDHeader(t *testing.T) {
	router, _ := newSyncRouter(t)

	rec := router.do(t, http.MethodGet, "/api/sync/books", nil, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "X-Device-ID")
}

func TestPullRows_InvalidUserIDHeader(t *testing.T) {
	router, _ := newSyncRouter(t)

	rec := router.do(t, http.MethodGet, "/api/sync/books", nil, map[string]string{
		"X-Device-ID": "dev-a",
		"X-User-ID":   "not-a-number",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPullRows_InvalidSinceParam(t *testing.T) {
	router, _ := newSyncRouter(t)

	rec := router.do(t, http.MethodGet, "/api/sync/books?since=abc", nil, deviceHeaders)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPullRows_UnknownTable(t *testing.T) {
	router, syncSvc := newSyncRouter(t)

	syncSvc.EXPECT().
		PullRows(gomock.Any(), gomock.Any()).
		Return(models.PullResponse{}, store.ErrUnknownTable)

	rec := router.do(t, http.MethodGet, "/api/sync/bookmarks", nil, deviceHeaders)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/sync/{table}
// ─────────────────────────────────────────────

func TestPushRows_Success(t *testing.T) {
	router, syncSvc := newSyncRouter(t)

	pushReq := models.PushRequest{Items: []models.SyncRow{
		{ID: "b1", HLC: "0000000000010-00000-dev-a", DeviceID: "dev-a", Data: json.RawMessage(`{"title":"Dune"}`)},
	}}
	body, err := json.Marshal(pushReq)
	require.NoError(t, err)

	syncSvc.EXPECT().
		PushRows(gomock.Any(), "books", int64(1), pushReq).
		Return(models.PushResponse{Results: []models.PushResult{
			{ID: "b1", ServerTimestamp: 8, Accepted: true},
		}}, nil)

	rec := router.do(t, http.MethodPost, "/api/sync/books", body, deviceHeaders)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PushResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Accepted)
	assert.Equal(t, int64(8), resp.Results[0].ServerTimestamp)
}

func TestPushRows_InvalidJSON(t *testing.T) {
	router, _ := newSyncRouter(t)

	rec := router.do(t, http.MethodPost, "/api/sync/books", []byte("{broken"), deviceHeaders)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "Invalid JSON"))
}

func TestPushRows_EmptyBatch(t *testing.T) {
	router, syncSvc := newSyncRouter(t)

	syncSvc.EXPECT().
		PushRows(gomock.Any(), "books", int64(1), models.PushRequest{}).
		Return(models.PushResponse{}, service.ErrNoItems)

	rec := router.do(t, http.MethodPost, "/api/sync/books", []byte(`{}`), deviceHeaders)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/sync/timestamp
// ─────────────────────────────────────────────

func TestCurrentTimestamp_Handler(t *testing.T) {
	router, syncSvc := newSyncRouter(t)

	syncSvc.EXPECT().
		CurrentTimestamp(gomock.Any()).
		Return(models.TimestampResponse{ServerTimestamp: 123}, nil)

	rec := router.do(t, http.MethodGet, "/api/sync/timestamp", nil, deviceHeaders)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TimestampResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(123), resp.ServerTimestamp)
}

// ─────────────────────────────────────────────
// /api/synclog/{table}
// ─────────────────────────────────────────────

func TestPullLog_Success(t *testing.T) {
	router, syncSvc := newSyncRouter(t)

	items := []models.LogEntry{{ID: "p1", EntityID: "book-1", DeviceID: "dev-b", Seq: 3}}
	syncSvc.EXPECT().
		PullLog(gomock.Any(), store.LogPullQuery{
			Table:         "reading_progress",
			UserID:        1,
			Since:         2,
			EntityID:      "book-1",
			ExcludeDevice: "dev-a",
			Limit:         25,
		}).
		Return(models.LogPullResponse{Items: items, Seq: 3}, nil)

	rec := router.do(t, http.MethodGet, "/api/synclog/reading_progress?since=2&limit=25&entityId=book-1", nil, deviceHeaders)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LogPullResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Seq)
	require.Len(t, resp.Items, 1)
}

func TestAppendLog_Success(t *testing.T) {
	router, syncSvc := newSyncRouter(t)

	pushReq := models.LogPushRequest{Items: []models.LogEntry{
		{ID: "p1", EntityID: "book-1", DeviceID: "dev-a", Data: json.RawMessage(`{"page":10}`)},
	}}
	body, err := json.Marshal(pushReq)
	require.NoError(t, err)

	syncSvc.EXPECT().
		AppendLog(gomock.Any(), "reading_progress", int64(1), pushReq).
		Return(models.LogPushResponse{Results: []models.LogPushResult{
			{ID: "p1", Seq: 4, Duplicate: false},
		}}, nil)

	rec := router.do(t, http.MethodPost, "/api/synclog/reading_progress", body, deviceHeaders)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LogPushResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, int64(4), resp.Results[0].Seq)
}

func TestAppendLog_MergeTableRejected(t *testing.T) {
	router, syncSvc := newSyncRouter(t)

	syncSvc.EXPECT().
		AppendLog(gomock.Any(), "books", int64(1), gomock.Any()).
		Return(models.LogPushResponse{}, store.ErrPolicyViolation)

	rec := router.do(t, http.MethodPost, "/api/synclog/books", []byte(`{"items":[]}`), deviceHeaders)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
