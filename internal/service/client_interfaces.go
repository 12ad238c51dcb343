package service

import (
	"context"

	"github.com/MKhiriev/go-model-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientLedgerService owns the ordered, deduplicated list of local changes
// not yet acknowledged by the server. The ledger holds at most one entry per
// model ID; later operations are consolidated into the existing entry, and
// the order of first appearance is preserved.
//
// Every mutation is persisted through the state store so pending work
// survives restarts.
type ClientLedgerService interface {
	// Activate loads the persisted ledger and enables tracking. Called when
	// a session is established or restored.
	Activate(ctx context.Context) error

	// Deactivate disables tracking. Track calls become no-ops until the next
	// Activate.
	Deactivate()

	// TrackChange records one local mutation, consolidating it with any
	// pending entry for the same model. A no-op while deactivated.
	TrackChange(ctx context.Context, op models.ChangeOp, model models.Model) error

	// TrackChangeBatch records a batch of same-op mutations in one persist.
	TrackChangeBatch(ctx context.Context, op models.ChangeOp, items []models.Model) error

	// Changes returns a copy of the pending entries in ledger order.
	Changes() []models.PendingChange

	// PendingCount returns the number of pending entries.
	PendingCount() int

	// PendingDeletes returns the number of pending delete entries. The pull
	// engine subtracts it from the server count before comparing against the
	// local cache.
	PendingDeletes() int

	// Remove drops the entry for modelID, if any.
	Remove(ctx context.Context, modelID string) error

	// Bump increments the retry counter of the entry for modelID and returns
	// the new value. Returns 0 when no such entry exists.
	Bump(ctx context.Context, modelID string) (int, error)

	// Clear drops every pending entry, both in memory and persisted.
	Clear(ctx context.Context) error
}

// ClientSyncService is the orchestrator of the synchronization engine: it
// owns the engine state, the in-flight guard, and the pull-before-push cycle.
type ClientSyncService interface {
	// Sync runs one full cycle: pull, then push, under a single in-flight
	// guard. Offline is a silent no-op. Returns [ErrSyncInFlight] when a
	// cycle is already running.
	Sync(ctx context.Context) error

	// Pull refreshes the local cache from the server without pushing.
	// Returns [ErrSyncInFlight] when a cycle is already running.
	Pull(ctx context.Context) error

	// Push uploads the pending ledger without pulling. An empty ledger,
	// offline, or an unauthenticated client yields a successful zero-count
	// outcome. When a cycle is already running the outcome carries
	// [ErrSyncInFlight] instead of a zero-count success; callers treat it
	// as a benign skip, the running cycle uploads the same ledger.
	Push(ctx context.Context) models.PushOutcome

	// PushAllModels stages every locally cached model as a create and runs a
	// sync cycle. Used for first-time migration of a pre-sync local
	// collection; models without an ID are assigned one.
	PushAllModels(ctx context.Context) error

	// Status returns a copy of the engine state.
	Status() models.SyncState

	// ModelsLoaded reports whether the local cache has received at least one
	// merge since startup.
	ModelsLoaded() bool

	// SetOnline flips the engine's connectivity flag. Transitioning to
	// offline moves the status to [models.SyncStatusOffline].
	SetOnline(online bool)

	// Online reports the current connectivity flag.
	Online() bool

	// SetAuthenticated flips the engine's session flag. While false, every
	// cycle is a no-op.
	SetAuthenticated(authenticated bool)
}

// ClientAuthService manages the magic-link session lifecycle.
type ClientAuthService interface {
	// RequestLink asks the server to mail a one-time login link.
	RequestLink(ctx context.Context, email string) error

	// VerifyLink exchanges a magic-link token for a session: the issued pair
	// and user are persisted, the ledger is activated, and the sync engine is
	// marked authenticated.
	VerifyLink(ctx context.Context, token string) (models.User, error)

	// RestoreSession re-establishes a persisted session at startup. Returns
	// [ErrNotAuthenticated] when no session is stored.
	RestoreSession(ctx context.Context) (models.User, error)

	// Logout invalidates the session server-side (best effort) and clears
	// all local session state, including the pending ledger.
	Logout(ctx context.Context) error

	// ForceLogout clears local session state without contacting the server.
	// Registered as the adapter's session-expired hook.
	ForceLogout()
}
