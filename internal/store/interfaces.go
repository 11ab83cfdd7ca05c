package store

import (
	"context"

	"github.com/MKhiriev/go-read-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// PullQuery describes one incremental pull page over merged rows.
type PullQuery struct {
	// Table is the registered table name.
	Table string
	// UserID scopes the query to one account.
	UserID int64
	// Since is the exclusive lower bound on the server timestamp.
	Since int64
	// EntityID, when non-empty, narrows the page to one entity scope.
	EntityID string
	// ExcludeDevice, when non-empty, filters out rows last written by
	// that device so a client does not pull its own writes back.
	ExcludeDevice string
	// Limit caps the number of rows in the page.
	Limit int
}

// LogPullQuery describes one incremental pull page over an append-only log.
// The same fields as [PullQuery] apply, with Since bounding the
// server-assigned sequence number instead of a timestamp.
type LogPullQuery struct {
	Table         string
	UserID        int64
	Since         int64
	EntityID      string
	ExcludeDevice string
	Limit         int
}

// MergeStorage is the server-side persistence layer for last-write-wins
// tables.
type MergeStorage interface {
	// MergeRows upserts pushed rows, letting the stored clock timestamp
	// decide each conflict. Every row is reported back with the server
	// timestamp now associated with its id, whether the push won or lost.
	MergeRows(ctx context.Context, table string, userID int64, rows []models.SyncRow) ([]models.PushResult, error)

	// PullRows returns one page of rows changed after the cursor, oldest
	// first, and whether more pages remain.
	PullRows(ctx context.Context, query PullQuery) ([]models.SyncRow, bool, error)

	// CurrentTimestamp returns the server's pull high-water mark. A pull
	// issued with this value as cursor returns only rows merged later.
	CurrentTimestamp(ctx context.Context) (int64, error)
}

// LogStorage is the server-side persistence layer for append-only tables.
type LogStorage interface {
	// AppendEntries inserts pushed entries, assigning each a strictly
	// increasing sequence number. An entry whose id was appended before
	// is reported as a duplicate with its original sequence number.
	AppendEntries(ctx context.Context, table string, userID int64, entries []models.LogEntry) ([]models.LogPushResult, error)

	// PullEntries returns one page of entries after the cursor in
	// sequence order, and whether more pages remain. A query from
	// sequence zero includes the excluded device's own entries so a
	// reinstalled device can restore its history.
	PullEntries(ctx context.Context, query LogPullQuery) ([]models.LogEntry, bool, error)
}
