// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the device-identity middleware when parsing the
// identity HTTP headers. Callers can match against them with [errors.Is].
var (
	// ErrEmptyDeviceIDHeader is returned when the incoming request does not
	// include an "X-Device-ID" header at all.
	ErrEmptyDeviceIDHeader = errors.New("empty `X-Device-ID` header")

	// ErrInvalidUserIDHeader is returned when the "X-User-ID" header is
	// present but is not a positive integer.
	ErrInvalidUserIDHeader = errors.New("invalid `X-User-ID` header")
)
