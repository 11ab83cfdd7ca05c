package service

import (
	"context"

	"github.com/MKhiriev/go-read-sync/internal/store"
	"github.com/MKhiriev/go-read-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService is the server-side application layer between the HTTP
// handlers and the storage repositories. It validates table names against
// the registry, enforces each table's merge policy, clamps page limits, and
// assembles the wire responses.
type SyncService interface {
	// PushRows merges one pushed batch into a last-write-wins table and
	// returns the per-row verdicts in request order.
	PushRows(ctx context.Context, table string, userID int64, req models.PushRequest) (models.PushResponse, error)

	// PullRows serves one incremental pull page of a last-write-wins
	// table. The response cursor is the server timestamp of the last
	// returned row, or the unchanged since value for an empty page.
	PullRows(ctx context.Context, query store.PullQuery) (models.PullResponse, error)

	// CurrentTimestamp returns the server's pull high-water mark.
	CurrentTimestamp(ctx context.Context) (models.TimestampResponse, error)

	// AppendLog appends one pushed batch to an append-only table and
	// returns the per-entry verdicts, duplicates included.
	AppendLog(ctx context.Context, table string, userID int64, req models.LogPushRequest) (models.LogPushResponse, error)

	// PullLog serves one incremental pull page of an append-only table.
	PullLog(ctx context.Context, query store.LogPullQuery) (models.LogPullResponse, error)
}
