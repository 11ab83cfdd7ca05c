package models

import "encoding/json"

// UnsyncedTimestamp is the sentinel stored in [SyncRow.ServerTimestamp] while
// a local write has not yet been acknowledged by the server. It is distinct
// from zero so that a genuine server timestamp of 0 (epoch) remains
// representable.
const UnsyncedTimestamp int64 = -1

// SyncRow is one synchronized record as it exists both in the local database
// and on the wire. The sync subsystem owns every field except Data;
// application code must never hand-edit the underscore-prefixed metadata.
type SyncRow struct {
	// ID is the stable row identifier, unique within (table, user).
	ID string `json:"id"`

	// EntityID is an optional secondary grouping key used for scoped sync
	// (e.g. "only pull annotations for this one book"). Empty when the
	// table is not entity-scoped.
	EntityID string `json:"entityId,omitempty"`

	// HLC is the hybrid logical clock timestamp of the last accepted write.
	HLC string `json:"_hlc"`

	// DeviceID identifies the device that produced the accepted write.
	DeviceID string `json:"_deviceId"`

	// IsDeleted marks the row as a tombstone. Deletion is always a normal
	// write with this flag set; rows are never physically removed.
	IsDeleted bool `json:"_isDeleted"`

	// ServerTimestamp is the server's acceptance time of this row, or
	// [UnsyncedTimestamp] while the row is a pending local write.
	ServerTimestamp int64 `json:"_serverTimestamp"`

	// Data is the table-specific payload. The sync engine treats it as an
	// opaque JSON object.
	Data json.RawMessage `json:"data"`
}

// Pending reports whether the row is a local write that has not yet been
// acknowledged by the server.
func (r *SyncRow) Pending() bool {
	return r.ServerTimestamp == UnsyncedTimestamp
}
