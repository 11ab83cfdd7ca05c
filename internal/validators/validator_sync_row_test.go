package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-read-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow() models.SyncRow {
	return models.SyncRow{
		ID:       "b1",
		HLC:      "0000000000010-00000-dev-a",
		DeviceID: "dev-a",
		Data:     json.RawMessage(`{"title":"Dune"}`),
	}
}

func validEntry() models.LogEntry {
	return models.LogEntry{
		ID:       "p1",
		EntityID: "book-1",
		DeviceID: "dev-a",
		Data:     json.RawMessage(`{"page":5}`),
	}
}

func TestValidate_SyncRow(t *testing.T) {
	v := NewSyncRowValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.SyncRow)
		wantErr error
	}{
		{name: "valid row", mutate: func(*models.SyncRow) {}},
		{
			name:    "empty id",
			mutate:  func(r *models.SyncRow) { r.ID = "" },
			wantErr: ErrEmptyRowID,
		},
		{
			name:    "malformed timestamp",
			mutate:  func(r *models.SyncRow) { r.HLC = "not-a-timestamp" },
			wantErr: ErrInvalidHLC,
		},
		{
			// a short millis field string-compares above every canonical
			// timestamp and would hijack the merge if admitted
			name:    "non-canonical timestamp width",
			mutate:  func(r *models.SyncRow) { r.HLC = "999-00000-dev-x" },
			wantErr: ErrInvalidHLC,
		},
		{
			name:    "lowercase counter hex",
			mutate:  func(r *models.SyncRow) { r.HLC = "0000000000010-000a4-dev-a" },
			wantErr: ErrInvalidHLC,
		},
		{
			name:    "empty device id",
			mutate:  func(r *models.SyncRow) { r.DeviceID = "" },
			wantErr: ErrEmptyDeviceID,
		},
		{
			name:    "missing payload",
			mutate:  func(r *models.SyncRow) { r.Data = nil },
			wantErr: ErrEmptyPayload,
		},
		{
			name:    "broken payload",
			mutate:  func(r *models.SyncRow) { r.Data = json.RawMessage(`{broken`) },
			wantErr: ErrInvalidPayload,
		},
		{
			name: "tombstone without payload is fine",
			mutate: func(r *models.SyncRow) {
				r.Data = nil
				r.IsDeleted = true
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(&row)

			err := v.Validate(ctx, row)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_SyncRow_FieldScoping(t *testing.T) {
	v := NewSyncRowValidator()
	ctx := context.Background()

	row := validRow()
	row.DeviceID = ""

	// scoped to the id only, the missing device id is not checked
	require.NoError(t, v.Validate(ctx, row, FieldID))
	assert.ErrorIs(t, v.Validate(ctx, row, FieldDeviceID), ErrEmptyDeviceID)
}

func TestValidate_SyncRow_UnknownField(t *testing.T) {
	v := NewSyncRowValidator()

	err := v.Validate(context.Background(), validRow(), "checksum")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_PushRequest(t *testing.T) {
	v := NewSyncRowValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.PushRequest{Items: []models.SyncRow{validRow()}}))

	assert.ErrorIs(t, v.Validate(ctx, models.PushRequest{}), ErrEmptyPushItems)

	bad := validRow()
	bad.ID = ""
	err := v.Validate(ctx, models.PushRequest{Items: []models.SyncRow{validRow(), bad}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyRowID)
	assert.Contains(t, err.Error(), "item 1")
}

func TestValidate_LogEntry(t *testing.T) {
	v := NewSyncRowValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validEntry()))

	noEntity := validEntry()
	noEntity.EntityID = ""
	assert.ErrorIs(t, v.Validate(ctx, noEntity), ErrEmptyEntityID)

	noPayload := validEntry()
	noPayload.Data = nil
	assert.ErrorIs(t, v.Validate(ctx, noPayload), ErrEmptyPayload)
}

func TestValidate_LogPushRequest(t *testing.T) {
	v := NewSyncRowValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.LogPushRequest{Items: []models.LogEntry{validEntry()}}))
	assert.ErrorIs(t, v.Validate(ctx, models.LogPushRequest{}), ErrEmptyPushItems)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewSyncRowValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_PointerInputs(t *testing.T) {
	v := NewSyncRowValidator()
	ctx := context.Background()

	row := validRow()
	require.NoError(t, v.Validate(ctx, &row))

	entry := validEntry()
	require.NoError(t, v.Validate(ctx, &entry))
}
