// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/hlc"
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/models"
)

// WriteKind distinguishes the two sources a synced write can come from.
type WriteKind int

const (
	// LocalWrite is a write originating on this device. The writer stamps
	// fresh clock metadata on every row before persisting it.
	LocalWrite WriteKind = iota

	// RemoteWrite is a write carrying metadata assigned elsewhere (pulled
	// rows or push acknowledgements). Metadata is trusted as-is and rows
	// are merged through the clock comparison.
	RemoteWrite
)

// WriteRequest describes a batch mutation of one synced table.
type WriteRequest struct {
	Kind  WriteKind
	Table string
	Rows  []models.SyncRow
}

// SyncWriter is the single write path into the local database. Application
// code and the sync engine both mutate synced tables through it, so every
// row that reaches [LocalStore] carries complete write metadata.
type SyncWriter struct {
	store  LocalStore
	clock  *hlc.Clock
	tables *registry.Registry
	notify func(table string)
	logger *logger.Logger
}

// NewSyncWriter constructs a [SyncWriter] over the given local store, clock
// and table registry.
func NewSyncWriter(store LocalStore, clock *hlc.Clock, tables *registry.Registry, log *logger.Logger) *SyncWriter {
	return &SyncWriter{
		store:  store,
		clock:  clock,
		tables: tables,
		notify: func(string) {},
		logger: log,
	}
}

// OnDirty registers the callback invoked after a local write commits,
// carrying the name of the table that now has pending changes. Passing nil
// restores the no-op callback.
func (w *SyncWriter) OnDirty(fn func(table string)) {
	if fn == nil {
		fn = func(string) {}
	}
	w.notify = fn
}

// Write persists a batch of rows according to the request kind.
//
// Local writes are stamped with a fresh clock timestamp, this device's id
// and the unsynced server-timestamp sentinel; the dirty callback fires after
// they commit. Remote writes keep their metadata and go through the merge
// comparison, so a stale remote row is skipped rather than applied.
func (w *SyncWriter) Write(ctx context.Context, req WriteRequest) (ApplyResult, error) {
	log := logger.FromContext(ctx)

	cfg, ok := w.tables.Lookup(req.Table)
	if !ok {
		return ApplyResult{}, fmt.Errorf("%w: %s", ErrUnknownTable, req.Table)
	}
	if len(req.Rows) == 0 {
		return ApplyResult{}, ErrEmptyWrite
	}

	switch req.Kind {
	case LocalWrite:
		stamps := w.clock.NextBatch(len(req.Rows))
		for i := range req.Rows {
			req.Rows[i].HLC = stamps[i]
			req.Rows[i].DeviceID = w.clock.DeviceID()
			req.Rows[i].ServerTimestamp = models.UnsyncedTimestamp
			fillEntityID(&req.Rows[i], cfg)
		}

		if err := w.store.SaveRows(ctx, req.Table, req.Rows); err != nil {
			log.Err(err).
				Str("func", "SyncWriter.Write").
				Str("table", req.Table).
				Msg("failed to persist local write")
			return ApplyResult{}, err
		}
		w.notify(req.Table)

		applied := make([]string, 0, len(req.Rows))
		for _, row := range req.Rows {
			applied = append(applied, row.ID)
		}
		return ApplyResult{Applied: applied, Skipped: []string{}}, nil

	case RemoteWrite:
		for i := range req.Rows {
			fillEntityID(&req.Rows[i], cfg)
		}
		return w.store.ApplyRemoteChanges(ctx, req.Table, req.Rows, hlc.Compare)

	default:
		return ApplyResult{}, fmt.Errorf("unknown write kind %d", req.Kind)
	}
}

// Tombstone soft-deletes rows by id: each row is reloaded, marked deleted
// and re-stamped as a fresh local write so the deletion propagates to other
// devices. Append-log tables are immutable and reject tombstones.
func (w *SyncWriter) Tombstone(ctx context.Context, table string, ids ...string) error {
	cfg, ok := w.tables.Lookup(table)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	if cfg.Policy == registry.PolicyAppendLog {
		return fmt.Errorf("%w: table %s is append-only", ErrPolicyViolation, table)
	}

	rows := make([]models.SyncRow, 0, len(ids))
	for _, id := range ids {
		row, err := w.store.GetLocalItem(ctx, table, id)
		if err != nil {
			return err
		}
		row.IsDeleted = true
		rows = append(rows, row)
	}

	_, err := w.Write(ctx, WriteRequest{Kind: LocalWrite, Table: table, Rows: rows})
	return err
}

// Delete always fails: synced tables never lose rows physically, otherwise
// other devices could not learn about the deletion. Use [SyncWriter.Tombstone].
func (w *SyncWriter) Delete(ctx context.Context, table string, ids ...string) error {
	if _, ok := w.tables.Lookup(table); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}

	return fmt.Errorf("%w: physical delete from %s", ErrPolicyViolation, table)
}

// fillEntityID extracts the entity scope from the row payload when the
// table is entity-scoped and the caller left EntityID empty.
func fillEntityID(row *models.SyncRow, cfg registry.TableConfig) {
	if cfg.EntityKey == "" || row.EntityID != "" || len(row.Data) == 0 {
		return
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(row.Data, &payload); err != nil {
		return
	}

	var value string
	if raw, ok := payload[cfg.EntityKey]; ok {
		if err := json.Unmarshal(raw, &value); err == nil {
			row.EntityID = value
		}
	}
}
