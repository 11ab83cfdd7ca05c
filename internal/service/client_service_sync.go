package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/adapter"
	"github.com/MKhiriev/go-read-sync/internal/hlc"
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/internal/store"
	"github.com/MKhiriev/go-read-sync/models"
)

type syncEngine struct {
	local  store.LocalStore
	writer *store.SyncWriter
	remote adapter.ServerAdapter
	clock  *hlc.Clock
	tables *registry.Registry

	pushLimit int
	pullLimit int
}

// NewSyncEngine constructs a [SyncEngine] over the local store, the write
// middleware, and the remote adapter. pushLimit and pullLimit cap the batch
// sizes of one round.
func NewSyncEngine(local store.LocalStore, writer *store.SyncWriter, remote adapter.ServerAdapter, clock *hlc.Clock, tables *registry.Registry, pushLimit, pullLimit int) SyncEngine {
	return &syncEngine{
		local:     local,
		writer:    writer,
		remote:    remote,
		clock:     clock,
		tables:    tables,
		pushLimit: pushLimit,
		pullLimit: pullLimit,
	}
}

// SyncTable implements [SyncEngine]. Pull always runs before push so that
// the local database knows about remote writes before its own pending rows
// are sent out.
func (s *syncEngine) SyncTable(ctx context.Context, table string, entityID string) (models.SyncResult, error) {
	cfg, ok := s.tables.Lookup(table)
	if !ok {
		return models.SyncResult{}, fmt.Errorf("%w: %s", store.ErrUnknownTable, table)
	}

	if cfg.Policy == registry.PolicyAppendLog {
		return s.syncLogTable(ctx, table, entityID)
	}
	return s.syncMergeTable(ctx, table, entityID)
}

func (s *syncEngine) syncMergeTable(ctx context.Context, table string, entityID string) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	var result models.SyncResult

	// ── Pull ────────────────────────────────────────────────────────────

	since, err := s.local.GetSyncCursor(ctx, table, entityID)
	if err != nil {
		return result, fmt.Errorf("get sync cursor: %w", err)
	}

	pullResp, err := s.remote.Pull(ctx, table, since, entityID, s.pullLimit)
	if err != nil {
		return result, fmt.Errorf("pull %s: %w", table, err)
	}

	if len(pullResp.Items) > 0 {
		// the clock must dominate the page before any of it lands, so a
		// concurrent local write cannot be stamped below applied rows
		s.receiveMaxHLC(pullResp.Items)

		applyResult, err := s.writer.Write(ctx, store.WriteRequest{
			Kind:  store.RemoteWrite,
			Table: table,
			Rows:  pullResp.Items,
		})
		if err != nil {
			return result, fmt.Errorf("apply pulled rows: %w", err)
		}

		result.Pulled = len(applyResult.Applied)
		// a conflict is any pulled row whose local counterpart carried a
		// different timestamp, whichever side won the merge
		result.Conflicts = len(applyResult.Skipped) + len(applyResult.Overwrote)
	}

	// the cursor only advances after the page is safely applied
	if err := s.local.SetSyncCursor(ctx, table, entityID, pullResp.ServerTimestamp); err != nil {
		return result, fmt.Errorf("advance sync cursor: %w", err)
	}
	result.HasMore = pullResp.HasMore

	// ── Push ────────────────────────────────────────────────────────────

	pending, err := s.local.GetPendingChanges(ctx, table, s.pushLimit)
	if err != nil {
		return result, fmt.Errorf("get pending changes: %w", err)
	}
	if len(pending) == 0 {
		return result, nil
	}

	pushResp, err := s.remote.Push(ctx, table, models.PushRequest{Items: pending})
	if err != nil {
		return result, fmt.Errorf("push %s: %w", table, err)
	}

	byID := make(map[string]models.SyncRow, len(pending))
	for _, row := range pending {
		byID[row.ID] = row
	}

	acks := make([]models.SyncRow, 0, len(pushResp.Results))
	for _, verdict := range pushResp.Results {
		if !verdict.Accepted {
			result.Errors = append(result.Errors, fmt.Sprintf("push %s/%s: %s", table, verdict.ID, verdict.Error))
			continue
		}

		row, ok := byID[verdict.ID]
		if !ok {
			log.Warn().
				Str("func", "syncEngine.syncMergeTable").
				Str("table", table).
				Str("id", verdict.ID).
				Msg("server acknowledged a row that was not pushed")
			continue
		}
		row.ServerTimestamp = verdict.ServerTimestamp
		acks = append(acks, row)
		result.Pushed++
	}

	if len(acks) > 0 {
		// the acknowledgement carries the same clock timestamp as the
		// pending copy, so the tie rule lets it overwrite
		if _, err := s.writer.Write(ctx, store.WriteRequest{
			Kind:  store.RemoteWrite,
			Table: table,
			Rows:  acks,
		}); err != nil {
			return result, fmt.Errorf("record push acknowledgements: %w", err)
		}
	}

	return result, nil
}

func (s *syncEngine) syncLogTable(ctx context.Context, table string, entityID string) (models.SyncResult, error) {
	var result models.SyncResult

	// ── Pull ────────────────────────────────────────────────────────────

	since, err := s.local.GetSyncCursor(ctx, table, entityID)
	if err != nil {
		return result, fmt.Errorf("get sync cursor: %w", err)
	}

	pullResp, err := s.remote.PullLog(ctx, table, since, entityID, s.pullLimit)
	if err != nil {
		return result, fmt.Errorf("pull log %s: %w", table, err)
	}

	if len(pullResp.Items) > 0 {
		rows := make([]models.SyncRow, 0, len(pullResp.Items))
		for _, entry := range pullResp.Items {
			rows = append(rows, logEntryToRow(entry))
		}

		applyResult, err := s.writer.Write(ctx, store.WriteRequest{
			Kind:  store.RemoteWrite,
			Table: table,
			Rows:  rows,
		})
		if err != nil {
			return result, fmt.Errorf("apply pulled log entries: %w", err)
		}
		result.Pulled = len(applyResult.Applied)
	}

	if err := s.local.SetSyncCursor(ctx, table, entityID, pullResp.Seq); err != nil {
		return result, fmt.Errorf("advance sync cursor: %w", err)
	}
	result.HasMore = pullResp.HasMore

	// ── Push ────────────────────────────────────────────────────────────

	pending, err := s.local.GetPendingChanges(ctx, table, s.pushLimit)
	if err != nil {
		return result, fmt.Errorf("get pending changes: %w", err)
	}
	if len(pending) == 0 {
		return result, nil
	}

	entries := make([]models.LogEntry, 0, len(pending))
	for _, row := range pending {
		entries = append(entries, models.LogEntry{
			ID:       row.ID,
			EntityID: row.EntityID,
			DeviceID: row.DeviceID,
			Data:     row.Data,
		})
	}

	pushResp, err := s.remote.PushLog(ctx, table, models.LogPushRequest{Items: entries})
	if err != nil {
		return result, fmt.Errorf("push log %s: %w", table, err)
	}

	byID := make(map[string]models.SyncRow, len(pending))
	for _, row := range pending {
		byID[row.ID] = row
	}

	acks := make([]models.SyncRow, 0, len(pushResp.Results))
	for _, verdict := range pushResp.Results {
		row, ok := byID[verdict.ID]
		if !ok {
			continue
		}
		// duplicates resolve to the original sequence number, which is
		// exactly what a reinstalled device needs
		row.ServerTimestamp = verdict.Seq
		acks = append(acks, row)
		result.Pushed++
	}

	if len(acks) > 0 {
		if _, err := s.writer.Write(ctx, store.WriteRequest{
			Kind:  store.RemoteWrite,
			Table: table,
			Rows:  acks,
		}); err != nil {
			return result, fmt.Errorf("record push acknowledgements: %w", err)
		}
	}

	return result, nil
}

// SyncAll implements [SyncEngine]. Tables sync one at a time; a failing
// table is reported but never blocks the others.
func (s *syncEngine) SyncAll(ctx context.Context) (map[string]models.SyncResult, error) {
	results := make(map[string]models.SyncResult, len(s.tables.Tables()))

	var errs []error
	for _, table := range s.tables.Tables() {
		var total models.SyncResult
		for {
			round, err := s.SyncTable(ctx, table, "")
			total.Merge(round)
			if err != nil {
				errs = append(errs, fmt.Errorf("sync %s: %w", table, err))
				break
			}
			if !round.HasMore {
				break
			}
		}
		results[table] = total
	}

	return results, errors.Join(errs...)
}

// InitializeSyncCursor implements [SyncEngine].
func (s *syncEngine) InitializeSyncCursor(ctx context.Context, table string, entityID string) error {
	cfg, ok := s.tables.Lookup(table)
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrUnknownTable, table)
	}
	if cfg.Policy == registry.PolicyAppendLog {
		return fmt.Errorf("%w: append-only table %s must replay its history", store.ErrPolicyViolation, table)
	}

	ts, err := s.remote.CurrentTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("get server timestamp: %w", err)
	}

	return s.local.SetSyncCursor(ctx, table, entityID, ts)
}

// ResetSyncCursor implements [SyncEngine].
func (s *syncEngine) ResetSyncCursor(ctx context.Context, table string, entityID string) error {
	if _, ok := s.tables.Lookup(table); !ok {
		return fmt.Errorf("%w: %s", store.ErrUnknownTable, table)
	}

	return s.local.DeleteSyncCursor(ctx, table, entityID)
}

// receiveMaxHLC feeds the newest pulled timestamp into the local clock so
// that subsequent local writes are ordered after everything just seen.
func (s *syncEngine) receiveMaxHLC(rows []models.SyncRow) {
	var max string
	for _, row := range rows {
		if row.HLC != "" && (max == "" || hlc.Compare(row.HLC, max) > 0) {
			max = row.HLC
		}
	}
	if max != "" {
		s.clock.Receive(max)
	}
}

func logEntryToRow(entry models.LogEntry) models.SyncRow {
	return models.SyncRow{
		ID:              entry.ID,
		EntityID:        entry.EntityID,
		DeviceID:        entry.DeviceID,
		ServerTimestamp: entry.Seq,
		Data:            entry.Data,
	}
}
