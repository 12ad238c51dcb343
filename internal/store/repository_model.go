package store

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/models"
)

type modelRepository struct {
	*DB
	logger *logger.Logger
	loaded atomic.Bool
}

func NewModelRepository(db *DB, logger *logger.Logger) ModelRepository {
	return &modelRepository{
		DB:     db,
		logger: logger,
	}
}

// MergeModels applies authoritative server state to the local cache: every
// received model is upserted, then shared-in models whose library is absent
// from activeLibraries are dropped. Runs in a single transaction so a partial
// merge never becomes visible.
func (m *modelRepository) MergeModels(ctx context.Context, items []models.Model, activeLibraries []models.SharedLibrary) error {
	log := logger.FromContext(ctx)

	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "modelRepository.MergeModels").Msg("failed to begin merge transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, item := range items {
		_, err = tx.ExecContext(ctx, upsertModel,
			item.ID,
			item.Name,
			item.Fields,
			item.UpdatedAt,
			item.OwnerID,
			item.Shared,
			item.LibraryID,
		)
		if err != nil {
			log.Err(err).
				Str("func", "modelRepository.MergeModels").
				Str("model_id", item.ID).
				Msg("failed to upsert model")
			return fmt.Errorf("failed to upsert model (id=%s): %w", item.ID, err)
		}
	}

	if err = m.deleteRevokedShared(ctx, tx, activeLibraries); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "modelRepository.MergeModels").Msg("failed to commit merge transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	m.loaded.Store(true)

	return nil
}

func (m *modelRepository) deleteRevokedShared(ctx context.Context, tx sqlExecutor, activeLibraries []models.SharedLibrary) error {
	log := logger.FromContext(ctx)

	if len(activeLibraries) == 0 {
		if _, err := tx.ExecContext(ctx, deleteAllSharedModels); err != nil {
			log.Err(err).Str("func", "modelRepository.deleteRevokedShared").Msg("failed to delete shared models")
			return fmt.Errorf("failed to delete shared models: %w", err)
		}
		return nil
	}

	placeholders := make([]string, 0, len(activeLibraries))
	args := make([]any, 0, len(activeLibraries))
	for i, lib := range activeLibraries {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, lib.ID)
	}

	query := fmt.Sprintf(deleteRevokedSharedModels, strings.Join(placeholders, ", "))
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "modelRepository.deleteRevokedShared").Msg("failed to delete revoked shared models")
		return fmt.Errorf("failed to delete revoked shared models: %w", err)
	}

	return nil
}

func (m *modelRepository) CountOwnedModels(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	row := m.DB.QueryRowContext(ctx, countOwnedModels)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "modelRepository.CountOwnedModels").Msg("failed to count owned models")
		return 0, fmt.Errorf("failed to count owned models: %w", err)
	}

	return count, nil
}

func (m *modelRepository) AllModels(ctx context.Context) ([]models.Model, error) {
	log := logger.FromContext(ctx)

	rows, err := m.DB.QueryContext(ctx, getAllModels)
	if err != nil {
		log.Err(err).Str("func", "modelRepository.AllModels").Msg("failed to query all models")
		return nil, fmt.Errorf("failed to query all models: %w", err)
	}
	defer rows.Close()

	var items []models.Model

	for rows.Next() {
		var item models.Model

		scanErr := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Fields,
			&item.UpdatedAt,
			&item.OwnerID,
			&item.Shared,
			&item.LibraryID,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "modelRepository.AllModels").Msg("failed to scan model row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "modelRepository.AllModels").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating model rows: %w", rowsErr)
	}

	return items, nil
}

func (m *modelRepository) Loaded() bool {
	return m.loaded.Load()
}
