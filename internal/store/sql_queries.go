// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertModel = `
		INSERT INTO models (
			id,
			name,
			fields,
			updated_at,
			owner_id,
			shared,
			library_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name       = excluded.name,
			fields     = excluded.fields,
			updated_at = excluded.updated_at,
			owner_id   = excluded.owner_id,
			shared     = excluded.shared,
			library_id = excluded.library_id;`

	getAllModels = `
		SELECT
			id,
			name,
			fields,
			updated_at,
			owner_id,
			shared,
			library_id
		FROM models
		ORDER BY name, id;`

	countOwnedModels = `
		SELECT COUNT(*)
		FROM models
		WHERE shared = 0;`

	deleteAllSharedModels = `
		DELETE FROM models
		WHERE shared = 1;`

	// deleteRevokedSharedModels is completed at call time with one
	// placeholder per active library id.
	deleteRevokedSharedModels = `
		DELETE FROM models
		WHERE shared = 1 AND library_id NOT IN (%s);`

	setStateValue = `
		INSERT INTO sync_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value;`

	getStateValue = `
		SELECT value
		FROM sync_state
		WHERE key = $1;`

	deleteStateValue = `
		DELETE FROM sync_state
		WHERE key = $1;`
)
