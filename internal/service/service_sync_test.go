package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/mock"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/internal/store"
	"github.com/MKhiriev/go-read-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T) (SyncService, *mock.MockMergeStorage, *mock.MockLogStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	merge := mock.NewMockMergeStorage(ctrl)
	logStore := mock.NewMockLogStorage(ctrl)

	svc := NewSyncService(merge, logStore, registry.Default(), logger.NewLogger("test"))
	return svc, merge, logStore
}

func TestPushRows(t *testing.T) {
	svc, merge, _ := newTestSyncService(t)
	ctx := context.Background()

	rows := []models.SyncRow{
		{ID: "b1", HLC: "0000000000010-00000-dev-a", DeviceID: "dev-a", Data: json.RawMessage(`{}`)},
	}
	merge.EXPECT().MergeRows(ctx, "books", int64(1), rows).
		Return([]models.PushResult{{ID: "b1", ServerTimestamp: 7, Accepted: true}}, nil)

	resp, err := svc.PushRows(ctx, "books", 1, models.PushRequest{Items: rows})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].Accepted)
	assert.Equal(t, int64(7), resp.Results[0].ServerTimestamp)
}

func TestPushRows_UnknownTable(t *testing.T) {
	svc, _, _ := newTestSyncService(t)

	_, err := svc.PushRows(context.Background(), "bookmarks", 1, models.PushRequest{
		Items: []models.SyncRow{{ID: "x"}},
	})
	assert.ErrorIs(t, err, store.ErrUnknownTable)
}

func TestPushRows_AppendLogTableRejected(t *testing.T) {
	svc, _, _ := newTestSyncService(t)

	_, err := svc.PushRows(context.Background(), "reading_progress", 1, models.PushRequest{
		Items: []models.SyncRow{{ID: "x"}},
	})
	assert.ErrorIs(t, err, store.ErrPolicyViolation)
}

func TestPushRows_InvalidRowRejected(t *testing.T) {
	svc, _, _ := newTestSyncService(t)

	// missing HLC and device id never reach storage
	resp, err := svc.PushRows(context.Background(), "books", 1, models.PushRequest{
		Items: []models.SyncRow{{ID: "b1", Data: json.RawMessage(`{}`)}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.False(t, resp.Results[0].Accepted)
	assert.NotEmpty(t, resp.Results[0].Error)
}

func TestPushRows_InvalidRowDoesNotBlockBatch(t *testing.T) {
	svc, merge, _ := newTestSyncService(t)
	ctx := context.Background()

	good1 := models.SyncRow{ID: "b1", HLC: "0000000000010-00000-dev-a", DeviceID: "dev-a", Data: json.RawMessage(`{}`)}
	bad := models.SyncRow{ID: "b2", Data: json.RawMessage(`{}`)}
	good2 := models.SyncRow{ID: "b3", HLC: "0000000000011-00000-dev-a", DeviceID: "dev-a", Data: json.RawMessage(`{}`)}

	merge.EXPECT().MergeRows(ctx, "books", int64(1), []models.SyncRow{good1, good2}).
		Return([]models.PushResult{
			{ID: "b1", ServerTimestamp: 7, Accepted: true},
			{ID: "b3", ServerTimestamp: 8, Accepted: true},
		}, nil)

	resp, err := svc.PushRows(ctx, "books", 1, models.PushRequest{
		Items: []models.SyncRow{good1, bad, good2},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)
	assert.True(t, resp.Results[0].Accepted)
	assert.False(t, resp.Results[1].Accepted)
	assert.Equal(t, "b2", resp.Results[1].ID)
	assert.True(t, resp.Results[2].Accepted)
}

func TestAppendLog_InvalidEntryRejected(t *testing.T) {
	svc, _, _ := newTestSyncService(t)

	_, err := svc.AppendLog(context.Background(), "reading_progress", 1, models.LogPushRequest{
		Items: []models.LogEntry{{ID: "p1", DeviceID: "dev-a", Data: json.RawMessage(`{}`)}},
	})
	assert.ErrorIs(t, err, ErrInvalidItems)
}

func TestPushRows_EmptyBatch(t *testing.T) {
	svc, _, _ := newTestSyncService(t)

	_, err := svc.PushRows(context.Background(), "books", 1, models.PushRequest{})
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestPullRows(t *testing.T) {
	svc, merge, _ := newTestSyncService(t)
	ctx := context.Background()

	items := []models.SyncRow{
		{ID: "b1", ServerTimestamp: 5},
		{ID: "b2", ServerTimestamp: 8},
	}
	merge.EXPECT().PullRows(ctx, store.PullQuery{Table: "books", UserID: 1, Since: 3, Limit: 100}).
		Return(items, true, nil)

	resp, err := svc.PullRows(ctx, store.PullQuery{Table: "books", UserID: 1, Since: 3, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, items, resp.Items)
	assert.Equal(t, int64(8), resp.ServerTimestamp)
	assert.True(t, resp.HasMore)
}

func TestPullRows_EmptyPageKeepsCursor(t *testing.T) {
	svc, merge, _ := newTestSyncService(t)
	ctx := context.Background()

	merge.EXPECT().PullRows(ctx, gomock.Any()).Return(nil, false, nil)

	resp, err := svc.PullRows(ctx, store.PullQuery{Table: "books", UserID: 1, Since: 42, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(42), resp.ServerTimestamp)
	assert.False(t, resp.HasMore)
}

func TestPullRows_NegativeCursor(t *testing.T) {
	svc, _, _ := newTestSyncService(t)

	_, err := svc.PullRows(context.Background(), store.PullQuery{Table: "books", UserID: 1, Since: -5})
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestPullRows_LimitClamped(t *testing.T) {
	svc, merge, _ := newTestSyncService(t)
	ctx := context.Background()

	merge.EXPECT().PullRows(ctx, store.PullQuery{Table: "books", UserID: 1, Limit: MaxPullPageLimit}).
		Return(nil, false, nil)
	merge.EXPECT().PullRows(ctx, store.PullQuery{Table: "books", UserID: 1, Limit: DefaultPullPageLimit}).
		Return(nil, false, nil)

	_, err := svc.PullRows(ctx, store.PullQuery{Table: "books", UserID: 1, Limit: 1_000_000})
	require.NoError(t, err)
	_, err = svc.PullRows(ctx, store.PullQuery{Table: "books", UserID: 1, Limit: 0})
	require.NoError(t, err)
}

func TestCurrentTimestamp(t *testing.T) {
	svc, merge, _ := newTestSyncService(t)
	ctx := context.Background()

	merge.EXPECT().CurrentTimestamp(ctx).Return(int64(123), nil)

	resp, err := svc.CurrentTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(123), resp.ServerTimestamp)
}

func TestCurrentTimestamp_StorageError(t *testing.T) {
	svc, merge, _ := newTestSyncService(t)
	ctx := context.Background()

	merge.EXPECT().CurrentTimestamp(ctx).Return(int64(0), errors.New("connection reset"))

	_, err := svc.CurrentTimestamp(ctx)
	require.Error(t, err)
}

func TestAppendLog(t *testing.T) {
	svc, _, logStore := newTestSyncService(t)
	ctx := context.Background()

	entries := []models.LogEntry{
		{ID: "p1", EntityID: "book-1", DeviceID: "dev-a", Data: json.RawMessage(`{"page":5}`)},
	}
	logStore.EXPECT().AppendEntries(ctx, "reading_progress", int64(1), entries).
		Return([]models.LogPushResult{{ID: "p1", Seq: 9}}, nil)

	resp, err := svc.AppendLog(ctx, "reading_progress", 1, models.LogPushRequest{Items: entries})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, int64(9), resp.Results[0].Seq)
}

func TestAppendLog_MergeTableRejected(t *testing.T) {
	svc, _, _ := newTestSyncService(t)

	_, err := svc.AppendLog(context.Background(), "books", 1, models.LogPushRequest{
		Items: []models.LogEntry{{ID: "x"}},
	})
	assert.ErrorIs(t, err, store.ErrPolicyViolation)
}

func TestPullLog(t *testing.T) {
	svc, _, logStore := newTestSyncService(t)
	ctx := context.Background()

	items := []models.LogEntry{
		{ID: "p1", Seq: 4},
		{ID: "p2", Seq: 6},
	}
	logStore.EXPECT().PullEntries(ctx, store.LogPullQuery{Table: "reading_progress", UserID: 1, Since: 2, Limit: 50}).
		Return(items, false, nil)

	resp, err := svc.PullLog(ctx, store.LogPullQuery{Table: "reading_progress", UserID: 1, Since: 2, Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, items, resp.Items)
	assert.Equal(t, int64(6), resp.Seq)
	assert.False(t, resp.HasMore)
}

func TestPullLog_NegativeCursor(t *testing.T) {
	svc, _, _ := newTestSyncService(t)

	_, err := svc.PullLog(context.Background(), store.LogPullQuery{Table: "reading_progress", UserID: 1, Since: -1})
	assert.ErrorIs(t, err, ErrInvalidCursor)
}
