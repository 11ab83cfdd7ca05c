package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRowNotFound is returned when a query targets a synced row
	// (identified by table and row id) that does not exist in the local
	// database.
	ErrRowNotFound = errors.New("synced row was not found")

	// ErrUnknownTable is returned when an operation names a table that is
	// not present in the sync registry.
	ErrUnknownTable = errors.New("table is not registered for sync")

	// ErrPolicyViolation is returned when a caller attempts an operation
	// the table's merge policy forbids, such as physically deleting a row
	// from a last-write-wins table instead of writing a tombstone.
	ErrPolicyViolation = errors.New("operation violates table merge policy")

	// ErrNoDeviceIdentity is returned when the local database holds no
	// device identity row. The identity is created on first open, so this
	// indicates a corrupted or hand-edited database file.
	ErrNoDeviceIdentity = errors.New("device identity is missing")

	// ErrEmptyWrite is returned when a write request carries no rows.
	ErrEmptyWrite = errors.New("write request contains no rows")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan synced row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan synced rows")
)
