package store

import (
	"context"

	"github.com/MKhiriev/go-read-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ApplyResult reports the outcome of merging a batch of remote rows into the
// local database. Every incoming row id appears in exactly one of the two
// slices.
type ApplyResult struct {
	// Applied lists ids of rows that replaced (or created) the local copy
	// because the remote write was at least as recent.
	Applied []string

	// Skipped lists ids of rows that lost the merge comparison to a more
	// recent local write. Losing is not an error.
	Skipped []string

	// Overwrote lists the subset of Applied that replaced an existing
	// local row carrying a different clock timestamp. Together with
	// Skipped it identifies the rows where both sides had written, which
	// is what the sync result reports as conflicts. A tie (same
	// timestamp, e.g. a push acknowledgement) is not a conflict.
	Overwrote []string
}

// LocalStore is the device-local persistence layer for synced rows. All row
// mutations go through [SyncWriter]; repositories only move bytes.
type LocalStore interface {
	// SaveRows upserts rows exactly as given, trusting the write metadata
	// already stamped on them.
	SaveRows(ctx context.Context, table string, rows []models.SyncRow) error

	// GetPendingChanges returns rows whose server timestamp still carries
	// the unsynced sentinel, ordered by clock timestamp, up to limit.
	GetPendingChanges(ctx context.Context, table string, limit int) ([]models.SyncRow, error)

	// GetLocalItem returns a single row by id. Returns [ErrRowNotFound]
	// when no such row exists.
	GetLocalItem(ctx context.Context, table string, id string) (models.SyncRow, error)

	// ApplyRemoteChanges merges incoming rows in one transaction using the
	// supplied clock comparison. An incoming row wins when the local copy
	// is absent or compare(incoming, local) >= 0.
	ApplyRemoteChanges(ctx context.Context, table string, rows []models.SyncRow, compare func(a, b string) int) (ApplyResult, error)

	// GetSyncCursor returns the stored pull cursor for the table scope, or
	// zero when the scope has never been synced.
	GetSyncCursor(ctx context.Context, table string, entityID string) (int64, error)

	// SetSyncCursor stores the pull cursor for the table scope.
	SetSyncCursor(ctx context.Context, table string, entityID string, value int64) error

	// DeleteSyncCursor removes the stored cursor so the next pull starts
	// from the beginning of the server's history.
	DeleteSyncCursor(ctx context.Context, table string, entityID string) error

	// DeviceID returns the stable identifier of this device, generating
	// and persisting one on first call.
	DeviceID(ctx context.Context) (string, error)
}
