package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	mergeSyncRow = `
		INSERT INTO sync_rows (
			table_name,
			user_id,
			row_id,
			entity_id,
			hlc,
			device_id,
			is_deleted,
			data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (table_name, user_id, row_id) DO UPDATE SET
			entity_id  = excluded.entity_id,
			hlc        = excluded.hlc,
			device_id  = excluded.device_id,
			is_deleted = excluded.is_deleted,
			data       = excluded.data,
			server_ts  = nextval('sync_rows_ts_seq')
		WHERE excluded.hlc > sync_rows.hlc
		RETURNING server_ts;`

	getStoredServerTimestamp = `
		SELECT server_ts
		FROM sync_rows
		WHERE table_name = $1 AND user_id = $2 AND row_id = $3;`

	getCurrentTimestamp = `SELECT last_value FROM sync_rows_ts_seq;`

	appendLogEntry = `
		INSERT INTO sync_log (
			table_name,
			user_id,
			entry_id,
			entity_id,
			device_id,
			data
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (table_name, user_id, entry_id) DO NOTHING
		RETURNING seq;`

	getStoredLogSeq = `
		SELECT seq
		FROM sync_log
		WHERE table_name = $1 AND user_id = $2 AND entry_id = $3;`
)

// buildPullRowsQuery assembles the incremental pull SELECT. The entity and
// device filters are optional, so the query is built dynamically. One extra
// row beyond the limit is requested to detect whether more pages remain.
func buildPullRowsQuery(query PullQuery) (string, []any, error) {
	builder := sq.Select(
		"row_id",
		"entity_id",
		"hlc",
		"device_id",
		"is_deleted",
		"server_ts",
		"data",
	).
		From("sync_rows").
		Where(sq.Eq{"table_name": query.Table, "user_id": query.UserID}).
		Where(sq.Gt{"server_ts": query.Since}).
		OrderBy("server_ts").
		Limit(uint64(query.Limit + 1)).
		PlaceholderFormat(sq.Dollar)

	if query.EntityID != "" {
		builder = builder.Where(sq.Eq{"entity_id": query.EntityID})
	}
	if query.ExcludeDevice != "" {
		builder = builder.Where(sq.NotEq{"device_id": query.ExcludeDevice})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildPullLogQuery assembles the log pull SELECT. The own-device exclusion
// is dropped for a full pull from sequence zero so a reinstalled device can
// recover entries it appended itself.
func buildPullLogQuery(query LogPullQuery) (string, []any, error) {
	builder := sq.Select(
		"seq",
		"entry_id",
		"entity_id",
		"device_id",
		"data",
	).
		From("sync_log").
		Where(sq.Eq{"table_name": query.Table, "user_id": query.UserID}).
		Where(sq.Gt{"seq": query.Since}).
		OrderBy("seq").
		Limit(uint64(query.Limit + 1)).
		PlaceholderFormat(sq.Dollar)

	if query.EntityID != "" {
		builder = builder.Where(sq.Eq{"entity_id": query.EntityID})
	}
	if query.ExcludeDevice != "" && query.Since > 0 {
		builder = builder.Where(sq.NotEq{"device_id": query.ExcludeDevice})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}
