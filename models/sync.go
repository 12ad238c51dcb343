package models

import "time"

// SyncStatus is the engine-wide synchronization status exposed to the
// UI layer.
type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusError   SyncStatus = "error"
	SyncStatusOffline SyncStatus = "offline"
)

// SyncState is the process-wide sync engine state. It is never
// persisted as a whole; only LastSyncAt survives restarts (via the
// state store).
type SyncState struct {
	Status       SyncStatus `json:"status"`
	LastSyncAt   *time.Time `json:"last_sync_at,omitempty"`
	PendingCount int        `json:"pending_count"`
	LastError    string     `json:"last_error,omitempty"`
}

// ConflictReason classifies a per-item push rejection issued by the
// server.
type ConflictReason string

const (
	// ConflictVersionMismatch means the pushed change was based on a
	// stale version stamp. Retryable after a fresh pull.
	ConflictVersionMismatch ConflictReason = "version_mismatch"
	// ConflictModelDeleted means the target model no longer exists on
	// the server. Not retryable.
	ConflictModelDeleted ConflictReason = "model_deleted"
	// ConflictNoPermission means access to the target was revoked.
	// Not retryable.
	ConflictNoPermission ConflictReason = "no_permission"
)

// SyncConflict is a server-issued verdict indicating a pushed change
// could not be applied as requested. Conflicts are consumed once per
// push cycle and never persisted.
type SyncConflict struct {
	ModelID string         `json:"id"`
	Reason  ConflictReason `json:"reason"`
}

// Retryable reports whether the conflict may resolve on a later push
// after the client refreshes its version stamps.
func (c SyncConflict) Retryable() bool {
	return c.Reason == ConflictVersionMismatch
}
