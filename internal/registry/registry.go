// Package registry holds the static configuration of synced tables.
//
// Both the client and the server validate every sync operation against the
// same registry: unknown tables are rejected, and each table is bound to
// exactly one merge policy at startup.
package registry

import (
	"fmt"
	"sort"
)

// MergePolicy selects how the server reconciles pushed rows of a table.
type MergePolicy string

const (
	// PolicyLWW merges whole rows by hybrid-logical-clock comparison:
	// the write with the greater timestamp replaces the other.
	PolicyLWW MergePolicy = "lww"

	// PolicyAppendLog stores every pushed entry immutably under a
	// server-assigned sequence number; there is no merge step.
	PolicyAppendLog MergePolicy = "append_log"
)

// TableConfig describes one synced table.
type TableConfig struct {
	// Name is the table identifier used in URLs and storage keys.
	Name string

	// EntityKey names the field of the payload that carries the optional
	// entity scope (e.g. "bookId"). Empty when the table has no scope.
	EntityKey string

	// Policy is the server-side merge policy for this table.
	Policy MergePolicy
}

// Registry maps table names to their sync configuration. It is built once
// at process start and read-only afterwards.
type Registry struct {
	tables map[string]TableConfig
}

// New constructs a Registry from the given table configs and validates it.
func New(tables ...TableConfig) (*Registry, error) {
	r := &Registry{tables: make(map[string]TableConfig, len(tables))}
	for _, tc := range tables {
		if tc.Name == "" {
			return nil, fmt.Errorf("%w: empty table name", ErrInvalidTableConfig)
		}
		if tc.Policy != PolicyLWW && tc.Policy != PolicyAppendLog {
			return nil, fmt.Errorf("%w: table %q has unknown policy %q", ErrInvalidTableConfig, tc.Name, tc.Policy)
		}
		if _, dup := r.tables[tc.Name]; dup {
			return nil, fmt.Errorf("%w: table %q registered twice", ErrInvalidTableConfig, tc.Name)
		}
		r.tables[tc.Name] = tc
	}

	return r, nil
}

// Default returns the registry of the reading application's synced tables.
func Default() *Registry {
	r, err := New(
		TableConfig{Name: "books", Policy: PolicyLWW},
		TableConfig{Name: "annotations", EntityKey: "bookId", Policy: PolicyLWW},
		TableConfig{Name: "reading_settings", Policy: PolicyLWW},
		TableConfig{Name: "reading_progress", EntityKey: "bookId", Policy: PolicyAppendLog},
	)
	if err != nil {
		// the built-in table set is validated by tests; reaching this is
		// a programmer error
		panic(err)
	}
	return r
}

// Lookup returns the configuration of the named table.
func (r *Registry) Lookup(table string) (TableConfig, bool) {
	tc, ok := r.tables[table]
	return tc, ok
}

// Tables returns all registered table names in deterministic order.
func (r *Registry) Tables() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
