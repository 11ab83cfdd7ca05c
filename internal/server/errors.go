// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// Returned by NewServer when the config names no listen address.
var (
	errNoServersAreCreated = errors.New("no servers are created")
)
