package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/utils"
	"github.com/MKhiriev/go-read-sync/models"
)

// localSyncRepository is the SQLite-backed implementation of [LocalStore].
// All synced tables share one physical table keyed by (table_name, id), so
// a single repository serves every registered table.
type localSyncRepository struct {
	*DB
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewLocalSyncRepository constructs a [LocalStore] backed by the provided
// local database connection and logger.
func NewLocalSyncRepository(db *DB, logger *logger.Logger) LocalStore {
	return &localSyncRepository{
		DB:     db,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// SaveRows upserts rows exactly as given in a single transaction.
func (l *localSyncRepository) SaveRows(ctx context.Context, table string, rows []models.SyncRow) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.SaveRows").
			Str("table", table).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, upsertLocalRow,
			table,
			row.ID,
			row.EntityID,
			row.HLC,
			row.DeviceID,
			row.IsDeleted,
			row.ServerTimestamp,
			string(row.Data),
		); err != nil {
			log.Err(err).
				Str("func", "localSyncRepository.SaveRows").
				Str("table", table).
				Str("id", row.ID).
				Msg("failed to upsert local row")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.SaveRows").
			Str("table", table).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetPendingChanges returns rows still awaiting server acknowledgement,
// ordered by clock timestamp so that pushes replay writes in causal order.
func (l *localSyncRepository) GetPendingChanges(ctx context.Context, table string, limit int) ([]models.SyncRow, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getPendingLocalRows, table, models.UnsyncedTimestamp, limit)
	if err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.GetPendingChanges").
			Str("table", table).
			Msg("failed to execute query for pending rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	pending := make([]models.SyncRow, 0, limit)

	for rows.Next() {
		row, scanErr := scanSyncRow(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localSyncRepository.GetPendingChanges").
				Str("table", table).
				Msg("failed to scan pending row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		pending = append(pending, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localSyncRepository.GetPendingChanges").
			Str("table", table).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return pending, nil
}

// GetLocalItem returns a single row by id, or [ErrRowNotFound].
func (l *localSyncRepository) GetLocalItem(ctx context.Context, table string, id string) (models.SyncRow, error) {
	log := logger.FromContext(ctx)

	row, err := scanSyncRow(l.DB.QueryRowContext(ctx, getLocalRow, table, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncRow{}, ErrRowNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.GetLocalItem").
			Str("table", table).
			Str("id", id).
			Msg("failed to scan local row")
		return models.SyncRow{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return row, nil
}

// ApplyRemoteChanges merges incoming rows in one transaction. For every row
// it reads the current local clock timestamp and lets the comparison decide:
// the incoming row is applied when no local copy exists or when it does not
// lose to the local one. Ties go to the incoming row, which makes push
// acknowledgements (same id, same timestamp) overwrite the pending copy.
func (l *localSyncRepository) ApplyRemoteChanges(ctx context.Context, table string, rows []models.SyncRow, compare func(a, b string) int) (ApplyResult, error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.ApplyRemoteChanges").
			Str("table", table).
			Msg("failed to begin transaction")
		return ApplyResult{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result := ApplyResult{
		Applied: make([]string, 0, len(rows)),
		Skipped: make([]string, 0),
	}

	for _, row := range rows {
		var localHLC string
		scanErr := tx.QueryRowContext(ctx, getLocalRowHLC, table, row.ID).Scan(&localHLC)
		if scanErr != nil && !errors.Is(scanErr, sql.ErrNoRows) {
			log.Err(scanErr).
				Str("func", "localSyncRepository.ApplyRemoteChanges").
				Str("table", table).
				Str("id", row.ID).
				Msg("failed to read local row timestamp")
			return ApplyResult{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		overwrote := false
		if scanErr == nil {
			switch cmp := compare(row.HLC, localHLC); {
			case cmp < 0:
				result.Skipped = append(result.Skipped, row.ID)
				continue
			case cmp > 0:
				overwrote = true
			}
		}

		if _, execErr := tx.ExecContext(ctx, upsertLocalRow,
			table,
			row.ID,
			row.EntityID,
			row.HLC,
			row.DeviceID,
			row.IsDeleted,
			row.ServerTimestamp,
			string(row.Data),
		); execErr != nil {
			log.Err(execErr).
				Str("func", "localSyncRepository.ApplyRemoteChanges").
				Str("table", table).
				Str("id", row.ID).
				Msg("failed to apply remote row")
			return ApplyResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		result.Applied = append(result.Applied, row.ID)
		if overwrote {
			result.Overwrote = append(result.Overwrote, row.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.ApplyRemoteChanges").
			Str("table", table).
			Msg("failed to commit transaction")
		return ApplyResult{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return result, nil
}

// GetSyncCursor returns the stored pull cursor, or zero for a fresh scope.
func (l *localSyncRepository) GetSyncCursor(ctx context.Context, table string, entityID string) (int64, error) {
	log := logger.FromContext(ctx)

	var value int64
	err := l.DB.QueryRowContext(ctx, getSyncCursor, table, entityID).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.GetSyncCursor").
			Str("table", table).
			Str("entity_id", entityID).
			Msg("failed to read sync cursor")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

// SetSyncCursor stores the pull cursor for the table scope.
func (l *localSyncRepository) SetSyncCursor(ctx context.Context, table string, entityID string, value int64) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, upsertSyncCursor, table, entityID, value); err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.SetSyncCursor").
			Str("table", table).
			Str("entity_id", entityID).
			Msg("failed to store sync cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteSyncCursor removes the stored cursor for the table scope.
func (l *localSyncRepository) DeleteSyncCursor(ctx context.Context, table string, entityID string) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, deleteSyncCursor, table, entityID); err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.DeleteSyncCursor").
			Str("table", table).
			Str("entity_id", entityID).
			Msg("failed to delete sync cursor")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeviceID returns the persisted device identity, creating it on first call.
// The insert ignores conflicts so concurrent first calls converge on one id.
func (l *localSyncRepository) DeviceID(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	var deviceID string
	err := l.DB.QueryRowContext(ctx, getDeviceIdentity).Scan(&deviceID)
	if err == nil {
		return deviceID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "localSyncRepository.DeviceID").
			Msg("failed to read device identity")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	generated := l.uuid.Generate()
	if _, err := l.DB.ExecContext(ctx, insertDeviceIdentity, generated); err != nil {
		log.Err(err).
			Str("func", "localSyncRepository.DeviceID").
			Msg("failed to persist device identity")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// re-read to survive a concurrent insert having won the conflict
	if err := l.DB.QueryRowContext(ctx, getDeviceIdentity).Scan(&deviceID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoDeviceIdentity
		}
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return deviceID, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncRow(scanner rowScanner) (models.SyncRow, error) {
	var (
		row  models.SyncRow
		data string
	)
	if err := scanner.Scan(
		&row.ID,
		&row.EntityID,
		&row.HLC,
		&row.DeviceID,
		&row.IsDeleted,
		&row.ServerTimestamp,
		&data,
	); err != nil {
		return models.SyncRow{}, err
	}
	row.Data = []byte(data)

	return row, nil
}
