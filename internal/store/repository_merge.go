package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/models"
)

// mergeRepository is the PostgreSQL-backed implementation of [MergeStorage].
// All last-write-wins tables share one physical table keyed by
// (table_name, user_id, row_id). The conditional upsert lets the database
// arbitrate concurrent pushes atomically, so no row-level locking is needed
// in Go.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (table, user_id, row counts).
type mergeRepository struct {
	*DB
	logger *logger.Logger
}

// NewMergeRepository constructs a [MergeStorage] backed by the provided
// database connection and logger.
func NewMergeRepository(db *DB, logger *logger.Logger) MergeStorage {
	return &mergeRepository{
		DB:     db,
		logger: logger,
	}
}

// MergeRows upserts the pushed rows inside a single transaction. Each row
// either wins (its clock timestamp is strictly greater than the stored one,
// or no stored row exists) and receives a fresh server timestamp, or loses
// and the stored row's timestamp is reported instead. Both outcomes are
// acknowledged as accepted, which keeps re-pushing idempotent.
func (m *mergeRepository) MergeRows(ctx context.Context, table string, userID int64, rows []models.SyncRow) ([]models.PushResult, error) {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "mergeRepository.MergeRows").
			Str("table", table).
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	results := make([]models.PushResult, 0, len(rows))

	for _, row := range rows {
		var serverTS int64
		err := tx.QueryRowContext(ctx, mergeSyncRow,
			table,
			userID,
			row.ID,
			row.EntityID,
			row.HLC,
			row.DeviceID,
			row.IsDeleted,
			[]byte(row.Data),
		).Scan(&serverTS)

		if errors.Is(err, sql.ErrNoRows) {
			// проигранный конфликт: отдаём сохранённый server_ts
			err = tx.QueryRowContext(ctx, getStoredServerTimestamp, table, userID, row.ID).Scan(&serverTS)
		}
		if err != nil {
			log.Err(err).
				Str("func", "mergeRepository.MergeRows").
				Str("table", table).
				Int64("user_id", userID).
				Str("row_id", row.ID).
				Str("pg_code", postgresError(err)).
				Bool("retryable", m.errorClassificator.Classify(err) == Retryable).
				Msg("failed to merge pushed row")
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		results = append(results, models.PushResult{
			ID:              row.ID,
			ServerTimestamp: serverTS,
			Accepted:        true,
		})
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "mergeRepository.MergeRows").
			Str("table", table).
			Int64("user_id", userID).
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return results, nil
}

// PullRows returns one page of rows merged after the cursor, oldest first.
// The extra row requested by the query builder only signals truncation and
// is never returned to the caller.
func (m *mergeRepository) PullRows(ctx context.Context, query PullQuery) ([]models.SyncRow, bool, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildPullRowsQuery(query)
	if err != nil {
		log.Err(err).
			Str("func", "mergeRepository.PullRows").
			Str("table", query.Table).
			Int64("user_id", query.UserID).
			Msg("failed to create query")
		return nil, false, err
	}

	rows, err := m.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "mergeRepository.PullRows").
			Str("table", query.Table).
			Int64("user_id", query.UserID).
			Msg("failed to execute pull query")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	page := make([]models.SyncRow, 0, query.Limit)

	for rows.Next() {
		var (
			row  models.SyncRow
			data []byte
		)
		scanErr := rows.Scan(
			&row.ID,
			&row.EntityID,
			&row.HLC,
			&row.DeviceID,
			&row.IsDeleted,
			&row.ServerTimestamp,
			&data,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "mergeRepository.PullRows").
				Str("table", query.Table).
				Int64("user_id", query.UserID).
				Msg("failed to scan pulled row")
			return nil, false, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		row.Data = data

		page = append(page, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "mergeRepository.PullRows").
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

// CurrentTimestamp returns the high-water mark of assigned server
// timestamps. Rows merged after this call will all carry greater values.
func (m *mergeRepository) CurrentTimestamp(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var ts int64
	if err := m.DB.QueryRowContext(ctx, getCurrentTimestamp).Scan(&ts); err != nil {
		log.Err(err).
			Str("func", "mergeRepository.CurrentTimestamp").
			Msg("failed to read server timestamp")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ts, nil
}
