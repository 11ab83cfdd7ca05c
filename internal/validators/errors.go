package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRowID     = errors.New("row ID cannot be empty")
	ErrInvalidHLC     = errors.New("invalid hybrid logical timestamp")
	ErrEmptyDeviceID  = errors.New("device ID cannot be empty")
	ErrEmptyEntityID  = errors.New("entity ID cannot be empty")
	ErrInvalidPayload = errors.New("payload is not valid JSON")
	ErrEmptyPayload   = errors.New("payload is required")
	ErrEmptyPushItems = errors.New("push items list cannot be empty")
)
