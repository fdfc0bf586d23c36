// SPDX-License-Identifier: Apache-2.0

package store

const (
	getKVEntry = `
		SELECT payload
		FROM catalog_kv
		WHERE name = $1;`

	upsertKVEntry = `
		INSERT INTO catalog_kv (
			name,
			payload,
			updated_at
		) VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = CURRENT_TIMESTAMP;`

	deleteKVEntry = `
		DELETE FROM catalog_kv
		WHERE name = $1;`
)
