package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/models"
)

// logRepository is the PostgreSQL-backed implementation of [LogStorage].
// Entries are insert-only; the BIGSERIAL sequence column provides the
// global ordering clients use as a pull cursor.
type logRepository struct {
	*DB
	logger *logger.Logger
}

// NewLogRepository constructs a [LogStorage] backed by the provided
// database connection and logger.
func NewLogRepository(db *DB, logger *logger.Logger) LogStorage {
	return &logRepository{
		DB:     db,
		logger: logger,
	}
}

// AppendEntries inserts the pushed entries inside a single transaction.
// Re-pushing an already stored entry id is reported as a duplicate carrying
// the original sequence number, never as an error.
func (l *logRepository) AppendEntries(ctx context.Context, table string, userID int64, entries []models.LogEntry) ([]models.LogPushResult, error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "logRepository.AppendEntries").
			Str("table", table).
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	results := make([]models.LogPushResult, 0, len(entries))

	for _, entry := range entries {
		var (
			seq       int64
			duplicate bool
		)
		err := tx.QueryRowContext(ctx, appendLogEntry,
			table,
			userID,
			entry.ID,
			entry.EntityID,
			entry.DeviceID,
			[]byte(entry.Data),
		).Scan(&seq)

		if errors.Is(err, sql.ErrNoRows) {
			duplicate = true
			err = tx.QueryRowContext(ctx, getStoredLogSeq, table, userID, entry.ID).Scan(&seq)
		}
		if err != nil {
			log.Err(err).
				Str("func", "logRepository.AppendEntries").
				Str("table", table).
				Int64("user_id", userID).
				Str("entry_id", entry.ID).
				Str("pg_code", postgresError(err)).
				Bool("retryable", l.errorClassificator.Classify(err) == Retryable).
				Msg("failed to append log entry")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		results = append(results, models.LogPushResult{
			ID:        entry.ID,
			Seq:       seq,
			Duplicate: duplicate,
		})
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "logRepository.AppendEntries").
			Str("table", table).
			Int64("user_id", userID).
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return results, nil
}

// PullEntries returns one page of entries after the cursor in sequence
// order, and whether more pages remain.
func (l *logRepository) PullEntries(ctx context.Context, query LogPullQuery) ([]models.LogEntry, bool, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildPullLogQuery(query)
	if err != nil {
		log.Err(err).
			Str("func", "logRepository.PullEntries").
			Str("table", query.Table).
			Int64("user_id", query.UserID).
			Msg("failed to create query")
		return nil, false, err
	}

	rows, err := l.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "logRepository.PullEntries").
			Str("table", query.Table).
			Int64("user_id", query.UserID).
			Msg("failed to execute pull query")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	page := make([]models.LogEntry, 0, query.Limit)

	for rows.Next() {
		var (
			entry models.LogEntry
			data  []byte
		)
		scanErr := rows.Scan(
			&entry.Seq,
			&entry.ID,
			&entry.EntityID,
			&entry.DeviceID,
			&data,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "logRepository.PullEntries").
				Str("table", query.Table).
				Int64("user_id", query.UserID).
				Msg("failed to scan log entry")
			return nil, false, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entry.Data = data

		page = append(page, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "logRepository.PullEntries").
			Str("table", query.Table).
			Int64("user_id", query.UserID).
			Msg("error occurred during rows iteration")
		return nil, false, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	hasMore := len(page) > query.Limit
	if hasMore {
		page = page[:query.Limit]
	}

	return page, hasMore, nil
}
