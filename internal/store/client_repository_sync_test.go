package store

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-read-sync/internal/config"
	"github.com/MKhiriev/go-read-sync/internal/hlc"
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/models"
)

func newTestLocalStore(t *testing.T) LocalStore {
	t.Helper()

	l := logger.NewLogger("test")
	db, err := NewConnectSQLite(context.Background(), config.ClientDB{
		DSN: filepath.Join(t.TempDir(), "local.db"),
	}, l)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewLocalSyncRepository(db, l)
}

func testRow(id, hlcTS string) models.SyncRow {
	return models.SyncRow{
		ID:              id,
		HLC:             hlcTS,
		DeviceID:        "dev-a",
		ServerTimestamp: models.UnsyncedTimestamp,
		Data:            json.RawMessage(`{"title":"Dune"}`),
	}
}

func TestSaveRows_RoundTrip(t *testing.T) {
	repo := newTestLocalStore(t)
	ctx := context.Background()

	row := testRow("b1", "0000000000010-00000-dev-a")
	if err := repo.SaveRows(ctx, "books", []models.SyncRow{row}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetLocalItem(ctx, "books", "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HLC != row.HLC || got.DeviceID != row.DeviceID {
		t.Errorf("metadata lost on round trip: %+v", got)
	}
	if got.ServerTimestamp != models.UnsyncedTimestamp {
		t.Errorf("expected unsynced sentinel, got %d", got.ServerTimestamp)
	}
	if string(got.Data) != string(row.Data) {
		t.Errorf("payload lost on round trip: %s", got.Data)
	}
}

func TestGetLocalItem_NotFound(t *testing.T) {
	repo := newTestLocalStore(t)

	_, err := repo.GetLocalItem(context.Background(), "books", "missing")
	if !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}

func TestGetPendingChanges_OnlyUnsyncedInClockOrder(t *testing.T) {
	repo := newTestLocalStore(t)
	ctx := context.Background()

	synced := testRow("b1", "0000000000010-00000-dev-a")
	synced.ServerTimestamp = 5

	later := testRow("b3", "0000000000030-00000-dev-a")
	earlier := testRow("b2", "0000000000020-00000-dev-a")

	if err := repo.SaveRows(ctx, "books", []models.SyncRow{synced, later, earlier}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, err := repo.GetPendingChanges(ctx, "books", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending rows, got %d", len(pending))
	}
	if pending[0].ID != "b2" || pending[1].ID != "b3" {
		t.Errorf("pending rows out of clock order: %s, %s", pending[0].ID, pending[1].ID)
	}
}

func TestGetPendingChanges_RespectsLimit(t *testing.T) {
	repo := newTestLocalStore(t)
	ctx := context.Background()

	rows := []models.SyncRow{
		testRow("b1", "0000000000010-00000-dev-a"),
		testRow("b2", "0000000000020-00000-dev-a"),
		testRow("b3", "0000000000030-00000-dev-a"),
	}
	if err := repo.SaveRows(ctx, "books", rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, err := repo.GetPendingChanges(ctx, "books", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("expected limit of 2 to apply, got %d rows", len(pending))
	}
}

func TestApplyRemoteChanges_NewerRemoteWins(t *testing.T) {
	repo := newTestLocalStore(t)
	ctx := context.Background()

	local := testRow("b1", "0000000000010-00000-dev-a")
	if err := repo.SaveRows(ctx, "books", []models.SyncRow{local}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remote := testRow("b1", "0000000000020-00000-dev-b")
	remote.DeviceID = "dev-b"
	remote.ServerTimestamp = 9
	remote.Data = json.RawMessage(`{"title":"Dune Messiah"}`)

	result, err := repo.ApplyRemoteChanges(ctx, "books", []models.SyncRow{remote}, hlc.Compare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Applied) != 1 || result.Applied[0] != "b1" {
		t.Fatalf("expected b1 applied, got %+v", result)
	}
	if len(result.Overwrote) != 1 || result.Overwrote[0] != "b1" {
		t.Fatalf("expected b1 reported as overwriting a differing local copy, got %+v", result)
	}

	got, err := repo.GetLocalItem(ctx, "books", "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DeviceID != "dev-b" || got.ServerTimestamp != 9 {
		t.Errorf("remote row not applied: %+v", got)
	}
}

func TestApplyRemoteChanges_StaleRemoteSkipped(t *testing.T) {
	repo := newTestLocalStore(t)
	ctx := context.Background()

	local := testRow("b1", "0000000000020-00000-dev-a")
	if err := repo.SaveRows(ctx, "books", []models.SyncRow{local}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stale := testRow("b1", "0000000000010-00000-dev-b")
	result, err := repo.ApplyRemoteChanges(ctx, "books", []models.SyncRow{stale}, hlc.Compare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "b1" {
		t.Fatalf("expected b1 skipped, got %+v", result)
	}

	got, err := repo.GetLocalItem(ctx, "books", "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HLC != local.HLC {
		t.Errorf("stale remote row overwrote local copy: %+v", got)
	}
}

func TestApplyRemoteChanges_TieGoesToRemote(t *testing.T) {
	repo := newTestLocalStore(t)
	ctx := context.Background()

	// a push acknowledgement carries the same id and clock timestamp,
	// differing only in the server timestamp
	local := testRow("b1", "0000000000010-00000-dev-a")
	if err := repo.SaveRows(ctx, "books", []models.SyncRow{local}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ack := local
	ack.ServerTimestamp = 77

	result, err := repo.ApplyRemoteChanges(ctx, "books", []models.SyncRow{ack}, hlc.Compare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Applied) != 1 {
		t.Fatalf("expected acknowledgement applied, got %+v", result)
	}
	if len(result.Overwrote) != 0 {
		t.Fatalf("a tie is not an overwrite, got %+v", result)
	}

	got, err := repo.GetLocalItem(ctx, "books", "b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Pending() {
		t.Error("acknowledged row must no longer be pending")
	}
	if got.ServerTimestamp != 77 {
		t.Errorf("expected server_ts=77, got %d", got.ServerTimestamp)
	}
}

func TestApplyRemoteChanges_MissingLocalApplied(t *testing.T) {
	repo := newTestLocalStore(t)
	ctx := context.Background()

	remote := testRow("b9", "0000000000010-00000-dev-b")
	remote.ServerTimestamp = 3

	result, err := repo.ApplyRemoteChanges(ctx, "books", []models.SyncRow{remote}, hlc.Compare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Applied) != 1 {
		t.Fatalf("expected new row applied, got %+v", result)
	}
	if len(result.Overwrote) != 0 {
		t.Fatalf("a fresh row overwrites nothing, got %+v", result)
	}
}

func TestSyncCursor_Lifecycle(t *testing.T) {
	repo := newTestLocalStore(t)
	ctx := context.Background()

	value, err := repo.GetSyncCursor(ctx, "annotations", "book-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 0 {
		t.Errorf("fresh cursor must be zero, got %d", value)
	}

	if err := repo.SetSyncCursor(ctx, "annotations", "book-1", 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SetSyncCursor(ctx, "annotations", "book-1", 55); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, err = repo.GetSyncCursor(ctx, "annotations", "book-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 55 {
		t.Errorf("expected cursor 55, got %d", value)
	}

	// a different entity scope keeps its own cursor
	other, err := repo.GetSyncCursor(ctx, "annotations", "book-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other != 0 {
		t.Errorf("expected independent cursor, got %d", other)
	}

	if err := repo.DeleteSyncCursor(ctx, "annotations", "book-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	value, err = repo.GetSyncCursor(ctx, "annotations", "book-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 0 {
		t.Errorf("deleted cursor must read as zero, got %d", value)
	}
}

func TestDeviceID_StableAcrossCalls(t *testing.T) {
	repo := newTestLocalStore(t)
	ctx := context.Background()

	first, err := repo.DeviceID(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == "" {
		t.Fatal("device id must not be empty")
	}

	second, err := repo.DeviceID(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != first {
		t.Errorf("device id changed between calls: %s != %s", first, second)
	}
}
