package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Match with
// [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
