package models

// PushRequest is the body of POST /api/sync/{table}. It carries the pending
// local rows of one table in a single batch.
type PushRequest struct {
	// Items is the batch of rows to merge on the server.
	Items []SyncRow `json:"items"`
}

// PushResult reports the server's verdict for one pushed row.
type PushResult struct {
	// ID is the row identifier the verdict applies to.
	ID string `json:"id"`

	// ServerTimestamp is the acceptance time assigned by the server.
	ServerTimestamp int64 `json:"serverTimestamp"`

	// Accepted is true when the server recorded the push. The server's
	// last-write-wins filtering is opaque to the pusher: a stale row is
	// still accepted (and silently discarded), which makes re-pushing
	// always safe.
	Accepted bool `json:"accepted"`

	// Error carries the rejection reason when Accepted is false.
	Error string `json:"error,omitempty"`
}

// PushResponse is the body returned by POST /api/sync/{table}.
type PushResponse struct {
	// Results holds one entry per pushed row, in request order.
	Results []PushResult `json:"results"`
}

// PullResponse is the body returned by GET /api/sync/{table}.
type PullResponse struct {
	// Items are the rows with a server timestamp greater than the
	// requested cursor, excluding the requesting device's own writes,
	// ordered by server timestamp ascending.
	Items []SyncRow `json:"items"`

	// ServerTimestamp is the cursor marking the end of this page: the
	// server timestamp of the last returned row, or the unchanged "since"
	// value when the page is empty.
	ServerTimestamp int64 `json:"serverTimestamp"`

	// HasMore is true when the result was truncated by the page limit.
	HasMore bool `json:"hasMore"`
}

// TimestampResponse is the body returned by GET /api/sync/timestamp. It is
// used to initialize a cursor at "now" without historical backfill.
type TimestampResponse struct {
	ServerTimestamp int64 `json:"serverTimestamp"`
}

// SyncResult aggregates the outcome of one sync round for one table.
// Errors are collected rather than thrown so that partial progress
// (accepted rows, advanced cursors) is preserved.
type SyncResult struct {
	// Pushed is the number of rows the server accepted during push.
	Pushed int `json:"pushed"`

	// Pulled is the number of rows applied locally during pull.
	Pulled int `json:"pulled"`

	// Conflicts counts pulled rows for which a local counterpart with a
	// different HLC existed.
	Conflicts int `json:"conflicts"`

	// HasMore is true when the pull page was truncated and another round
	// is needed to catch up.
	HasMore bool `json:"hasMore"`

	// Errors holds per-row or per-phase failure messages. A non-empty
	// list does not invalidate the counts above.
	Errors []string `json:"errors,omitempty"`
}

// Merge folds other into r, summing counts and appending errors. Used by
// Sync to combine the pull and push halves of one round.
func (r *SyncResult) Merge(other SyncResult) {
	r.Pushed += other.Pushed
	r.Pulled += other.Pulled
	r.Conflicts = r.Conflicts + other.Conflicts
	r.HasMore = r.HasMore || other.HasMore
	r.Errors = append(r.Errors, other.Errors...)
}
