package service

import (
	"context"

	"github.com/MKhiriev/go-read-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncEngine defines the client-side contract for one synchronisation round
// of one table: pull remote changes, apply them locally, then push pending
// local changes and record the server's acknowledgements.
type SyncEngine interface {
	// SyncTable runs one pull-then-push round for the given table.
	// entityID, when non-empty, narrows the pull to one entity scope
	// (e.g. annotations of a single book). The returned result carries
	// counts, per-row errors, and HasMore when the pull page was
	// truncated and another round is needed. A non-nil error means the
	// round could not run at all; partial progress is reported through
	// the result instead.
	SyncTable(ctx context.Context, table string, entityID string) (models.SyncResult, error)

	// SyncAll runs SyncTable sequentially for every registered table,
	// repeating rounds per table until no more pages remain. It returns
	// per-table results keyed by table name; table failures are joined
	// into the returned error but never abort the remaining tables.
	SyncAll(ctx context.Context) (map[string]models.SyncResult, error)

	// InitializeSyncCursor sets the pull cursor of a table scope to the
	// server's current high-water mark, so the next pull skips all
	// existing history. Intended for freshly created scopes whose
	// history is not wanted locally. Append-only tables reject this:
	// their history is the data.
	InitializeSyncCursor(ctx context.Context, table string, entityID string) error

	// ResetSyncCursor removes the pull cursor of a table scope so the
	// next pull re-fetches from the beginning of the server's history.
	ResetSyncCursor(ctx context.Context, table string, entityID string) error
}

// SyncCoordinator owns all sync scheduling on the client: the periodic
// baseline sync, dirty-table notifications, connectivity transitions, and
// the throttle that keeps chatty writers from spamming the server.
type SyncCoordinator interface {
	// Start launches the coordinator's background goroutine. Any
	// previously running coordinator loop is stopped first.
	Start(ctx context.Context)

	// Run starts the coordinator detached from any caller context. It
	// exists so the coordinator can be launched as a background worker.
	Run()

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated. Safe to call when not running.
	Stop()

	// NotifyChange requests a near-future sync of one table, typically
	// right after a local write. The request is dropped (not queued) when
	// the coordinator is offline, a sync is already in flight, or the
	// table synced too recently.
	NotifyChange(table string)

	// SetOnline records a connectivity transition. Going from offline to
	// online triggers a full sync; while offline all sync requests are
	// dropped.
	SetOnline(online bool)

	// OnCacheInvalidate registers the callback invoked after a sync
	// applied remote rows to a table, so in-memory caches of that table
	// can be refreshed. Passing nil restores the no-op callback.
	OnCacheInvalidate(fn func(table string))
}
