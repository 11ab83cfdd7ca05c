package service

import "errors"

var (
	// ErrNoItems is returned when a push request carries an empty batch.
	ErrNoItems = errors.New("no items provided")

	// ErrInvalidCursor is returned when a pull request carries a negative
	// cursor value.
	ErrInvalidCursor = errors.New("invalid cursor value")

	// ErrInvalidItems wraps a validation failure of a pushed batch.
	ErrInvalidItems = errors.New("invalid push items")
)
