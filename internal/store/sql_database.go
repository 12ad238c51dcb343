package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

// sqlExecutor is satisfied by both *sql.DB and *sql.Tx.
type sqlExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
