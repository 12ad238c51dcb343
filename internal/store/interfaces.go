package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-model-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ModelRepository is the local cache of models shown to the user. The sync
// engine hands it the authoritative server state after every successful pull.
type ModelRepository interface {
	// MergeModels upserts the given models and removes shared-in models whose
	// library is no longer in activeLibraries. Idempotent.
	MergeModels(ctx context.Context, items []models.Model, activeLibraries []models.SharedLibrary) error
	CountOwnedModels(ctx context.Context) (int, error)
	AllModels(ctx context.Context) ([]models.Model, error)
	// Loaded reports whether the cache received at least one merge since the
	// process started.
	Loaded() bool
}

// StateStore persists session credentials and sync bookkeeping between runs.
type StateStore interface {
	SaveTokens(ctx context.Context, pair models.TokenPair) error
	Tokens(ctx context.Context) (models.TokenPair, error)
	SaveUser(ctx context.Context, user models.User) error
	User(ctx context.Context) (models.User, error)
	SaveLastSyncAt(ctx context.Context, at time.Time) error
	LastSyncAt(ctx context.Context) (*time.Time, error)
	SaveLedger(ctx context.Context, changes []models.PendingChange) error
	Ledger(ctx context.Context) ([]models.PendingChange, error)
	ClearSession(ctx context.Context) error
}
