// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeOp is the kind of local mutation recorded in the pending-change
// ledger.
type ChangeOp string

const (
	// OpCreate records a model the server has never seen.
	OpCreate ChangeOp = "create"
	// OpUpdate records a modification of a model the server already holds.
	OpUpdate ChangeOp = "update"
	// OpDelete records a removal. Only ID and UpdatedAt are retained.
	OpDelete ChangeOp = "delete"
)

// PendingChange is one entry of the pending-change ledger: a local
// mutation not yet acknowledged by the server.
//
// Invariant: the ledger holds at most one PendingChange per model ID;
// later operations are consolidated into the existing entry.
type PendingChange struct {
	// Op is the consolidated operation for the model.
	Op ChangeOp `json:"operation"`

	// Model carries at least ID. For OpDelete it is minimized to
	// {ID, UpdatedAt}; for OpCreate/OpUpdate it carries the full
	// payload to upload.
	Model Model `json:"model"`

	// RetryCount counts version_mismatch verdicts received for this
	// entry. The push engine abandons the entry when it reaches the
	// retry ceiling.
	RetryCount int `json:"retry_count"`
}
