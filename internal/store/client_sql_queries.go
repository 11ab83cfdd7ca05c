// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertLocalRow = `
		INSERT INTO sync_rows (
			table_name,
			id,
			entity_id,
			hlc,
			device_id,
			is_deleted,
			server_ts,
			data
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (table_name, id) DO UPDATE SET
			entity_id  = excluded.entity_id,
			hlc        = excluded.hlc,
			device_id  = excluded.device_id,
			is_deleted = excluded.is_deleted,
			server_ts  = excluded.server_ts,
			data       = excluded.data;`

	getPendingLocalRows = `
		SELECT
			id,
			entity_id,
			hlc,
			device_id,
			is_deleted,
			server_ts,
			data
		FROM sync_rows
		WHERE table_name = ? AND server_ts = ?
		ORDER BY hlc
		LIMIT ?;`

	getLocalRow = `
		SELECT
			id,
			entity_id,
			hlc,
			device_id,
			is_deleted,
			server_ts,
			data
		FROM sync_rows
		WHERE table_name = ? AND id = ?;`

	getLocalRowHLC = `
		SELECT hlc
		FROM sync_rows
		WHERE table_name = ? AND id = ?;`

	getSyncCursor = `
		SELECT value
		FROM sync_cursors
		WHERE table_name = ? AND entity_id = ?;`

	upsertSyncCursor = `
		INSERT INTO sync_cursors (table_name, entity_id, value)
		VALUES (?, ?, ?)
		ON CONFLICT (table_name, entity_id) DO UPDATE SET
			value = excluded.value;`

	deleteSyncCursor = `
		DELETE FROM sync_cursors
		WHERE table_name = ? AND entity_id = ?;`

	getDeviceIdentity = `
		SELECT device_id
		FROM device_identity
		WHERE id = 1;`

	insertDeviceIdentity = `
		INSERT INTO device_identity (id, device_id)
		VALUES (1, ?)
		ON CONFLICT (id) DO NOTHING;`
)
