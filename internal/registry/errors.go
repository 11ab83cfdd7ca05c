package registry

import "errors"

// ErrInvalidTableConfig is returned by [New] when the supplied table set
// fails startup validation (empty name, unknown merge policy, or duplicate
// registration).
var ErrInvalidTableConfig = errors.New("invalid table configuration")
