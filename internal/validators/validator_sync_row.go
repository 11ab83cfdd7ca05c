package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/hlc"
	"github.com/MKhiriev/go-read-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the client-generated unique identifier of a row.
	FieldID = "id"

	// FieldHLC targets the hybrid logical timestamp of a row.
	FieldHLC = "hlc"

	// FieldDeviceID targets the originating device identifier.
	FieldDeviceID = "device_id"

	// FieldEntityID targets the entity scope of an append-log entry.
	FieldEntityID = "entity_id"

	// FieldData targets the opaque JSON payload of a row or entry.
	FieldData = "data"

	// FieldItems targets the batch itself in push requests.
	FieldItems = "items"
)

type SyncRowValidator struct {
}

func NewSyncRowValidator() Validator {
	return &SyncRowValidator{}
}

func (v *SyncRowValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncRow:
		return v.validateSyncRow(ctx, value, fields...)
	case *models.SyncRow:
		return v.validateSyncRow(ctx, *value, fields...)

	case models.PushRequest:
		return v.validatePushRequest(ctx, value, fields...)
	case *models.PushRequest:
		return v.validatePushRequest(ctx, *value, fields...)

	case models.LogEntry:
		return v.validateLogEntry(ctx, value, fields...)
	case *models.LogEntry:
		return v.validateLogEntry(ctx, *value, fields...)

	case models.LogPushRequest:
		return v.validateLogPushRequest(ctx, value, fields...)
	case *models.LogPushRequest:
		return v.validateLogPushRequest(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *SyncRowValidator) validateSyncRow(_ context.Context, row models.SyncRow, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldHLC, FieldDeviceID, FieldData}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if row.ID == "" {
				return ErrEmptyRowID
			}
		case FieldHLC:
			if !hlc.Valid(row.HLC) {
				return fmt.Errorf("%w: %q", ErrInvalidHLC, row.HLC)
			}
		case FieldDeviceID:
			if row.DeviceID == "" {
				return ErrEmptyDeviceID
			}
		case FieldData:
			// tombstones travel without a payload
			if len(row.Data) == 0 {
				if !row.IsDeleted {
					return ErrEmptyPayload
				}
				continue
			}
			if !json.Valid(row.Data) {
				return ErrInvalidPayload
			}
		case FieldEntityID, FieldItems:
			// not applicable to a single row
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *SyncRowValidator) validatePushRequest(ctx context.Context, req models.PushRequest, fields ...string) error {
	if len(req.Items) == 0 {
		return ErrEmptyPushItems
	}

	for i, row := range req.Items {
		if err := v.validateSyncRow(ctx, row, fields...); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	return nil
}

func (v *SyncRowValidator) validateLogEntry(_ context.Context, entry models.LogEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldEntityID, FieldDeviceID, FieldData}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if entry.ID == "" {
				return ErrEmptyRowID
			}
		case FieldEntityID:
			if entry.EntityID == "" {
				return ErrEmptyEntityID
			}
		case FieldDeviceID:
			if entry.DeviceID == "" {
				return ErrEmptyDeviceID
			}
		case FieldData:
			if len(entry.Data) == 0 {
				return ErrEmptyPayload
			}
			if !json.Valid(entry.Data) {
				return ErrInvalidPayload
			}
		case FieldHLC, FieldItems:
			// log entries are ordered by server sequence, not by timestamp
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *SyncRowValidator) validateLogPushRequest(ctx context.Context, req models.LogPushRequest, fields ...string) error {
	if len(req.Items) == 0 {
		return ErrEmptyPushItems
	}

	for i, entry := range req.Items {
		if err := v.validateLogEntry(ctx, entry, fields...); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	return nil
}
