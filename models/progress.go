package models

import "encoding/json"

// LogEntry is one record of an append-only synced log (reading progress).
// Unlike [SyncRow] there is no merge step: every entry is immutable once
// inserted and ordered by a server-assigned sequence number.
type LogEntry struct {
	// ID is the client-supplied identifier that makes inserts idempotent:
	// re-pushing the same ID is reported as a duplicate, not an error.
	ID string `json:"id"`

	// EntityID optionally scopes the entry to one logical parent
	// (e.g. the book whose reading progress this records).
	EntityID string `json:"entityId,omitempty"`

	// DeviceID identifies the device that produced the entry.
	DeviceID string `json:"_deviceId"`

	// Seq is the server-assigned sequence number, strictly increasing in
	// insert order. Zero until the entry has been accepted by the server.
	Seq int64 `json:"_seq"`

	// Data is the table-specific payload, opaque to the sync engine.
	Data json.RawMessage `json:"data"`
}

// LogPushRequest is the body of POST /api/synclog/{table}.
type LogPushRequest struct {
	Items []LogEntry `json:"items"`
}

// LogPushResult reports the server's verdict for one pushed log entry.
type LogPushResult struct {
	// ID is the entry identifier the verdict applies to.
	ID string `json:"id"`

	// Seq is the assigned sequence number, or the previously assigned one
	// when Duplicate is true.
	Seq int64 `json:"seq"`

	// Duplicate is true when an entry with the same ID was already stored.
	Duplicate bool `json:"duplicate"`
}

// LogPushResponse is the body returned by POST /api/synclog/{table}.
type LogPushResponse struct {
	Results []LogPushResult `json:"results"`
}

// LogPullResponse is the body returned by GET /api/synclog/{table}.
type LogPullResponse struct {
	// Items are the entries with Seq greater than the requested cursor,
	// ordered by Seq ascending.
	Items []LogEntry `json:"items"`

	// Seq is the cursor marking the end of this page: the sequence number
	// of the last returned entry, or the unchanged "since" value when the
	// page is empty.
	Seq int64 `json:"seq"`

	// HasMore is true when the result was truncated by the page limit.
	HasMore bool `json:"hasMore"`
}
