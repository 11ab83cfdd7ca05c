// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// from the underlying protocol. The package currently ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrBadRequest] for 400, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-read-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Implementations are responsible for serialisation, identity header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Implementations never retry and never reorder requests. Retry policy
// belongs to the sync coordinator.
type ServerAdapter interface {
	// SetDeviceID stores the device identifier attached to all subsequent
	// requests. The server uses it to exclude this device's own writes
	// from pull responses. It should be called once, before the first
	// sync, with the identity persisted in the local store.
	SetDeviceID(deviceID string)

	// DeviceID returns the device identifier currently stored in the
	// adapter, or an empty string if none has been set yet.
	DeviceID() string

	// Push sends one batch of pending rows to the merge endpoint of a
	// last-write-wins table. The response carries a per-row verdict in
	// request order.
	Push(ctx context.Context, table string, req models.PushRequest) (models.PushResponse, error)

	// Pull fetches one page of rows changed after the since cursor.
	// entityID, when non-empty, narrows the page to one entity scope.
	Pull(ctx context.Context, table string, since int64, entityID string, limit int) (models.PullResponse, error)

	// CurrentTimestamp returns the server's pull high-water mark, used to
	// initialize a cursor at "now" without backfilling history.
	CurrentTimestamp(ctx context.Context) (int64, error)

	// PushLog appends one batch of entries to an append-only table.
	// Duplicates are reported per entry, never as an error.
	PushLog(ctx context.Context, table string, req models.LogPushRequest) (models.LogPushResponse, error)

	// PullLog fetches one page of log entries after the since sequence
	// number.
	PullLog(ctx context.Context, table string, since int64, entityID string, limit int) (models.LogPullResponse, error)
}
