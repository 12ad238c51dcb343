package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-keeper/internal/config"
	"github.com/MKhiriev/go-model-keeper/internal/logger"
)

// ClientStorages groups the client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// ModelRepository is the SQLite-backed local cache of models.
	ModelRepository ModelRepository

	// StateStore persists the session and sync bookkeeping (tokens, user,
	// last sync time, pending-change ledger).
	StateStore StateStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ModelRepository: NewModelRepository(db, logger),
		StateStore:      NewStateStore(db, logger),
	}, nil
}
