package models

import "time"

// StatusResponse is the server's answer to the lightweight sync status
// probe. The pull engine compares ActiveModelCount against the local
// tally to decide between full and incremental sync.
type StatusResponse struct {
	// ActiveModelCount is the authoritative number of non-deleted
	// models the server holds for the user (owned models only,
	// shared-in models excluded).
	ActiveModelCount int `json:"active_model_count"`
}

// PullResponse is one page of server state. The client requests pages
// sequentially until HasMore is false.
type PullResponse struct {
	// Models is the page of records matching the pull filter.
	Models []Model `json:"models"`

	// ServerTime is the server-issued timestamp persisted as the new
	// last-sync watermark after a successful pull.
	ServerTime time.Time `json:"server_time"`

	// Count is the number of models in this page.
	Count int `json:"count"`

	// Total is the total number of models matching the filter.
	Total int `json:"total"`

	// HasMore reports whether further pages remain.
	HasMore bool `json:"has_more"`

	// SharedLibraries is the full set of libraries currently shared
	// with the user. The list is stable within one pull cycle; the
	// value from the latest page wins.
	SharedLibraries []SharedLibrary `json:"shared_libraries"`
}

// PushVerdicts groups the per-item outcomes of a push request.
type PushVerdicts struct {
	Created   []string       `json:"created"`
	Updated   []string       `json:"updated"`
	Deleted   []string       `json:"deleted"`
	Conflicts []SyncConflict `json:"conflicts"`
}

// Accepted reports whether the change for modelID was applied by the
// server (created, updated, or deleted).
func (v PushVerdicts) Accepted(modelID string) bool {
	for _, set := range [][]string{v.Created, v.Updated, v.Deleted} {
		for _, id := range set {
			if id == modelID {
				return true
			}
		}
	}
	return false
}

// PushResponse is the server's answer to a ledger upload.
type PushResponse struct {
	ServerTime time.Time    `json:"server_time"`
	Results    PushVerdicts `json:"results"`
}

// VerifyResponse is returned when a magic-link token is exchanged for a
// session.
type VerifyResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Tokens returns the issued pair as a [TokenPair].
func (r VerifyResponse) Tokens() TokenPair {
	return TokenPair{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken}
}

// PushOutcome is the engine-level result of one push cycle, exposed to
// the UI layer. An empty ledger yields {Success: true, Count: 0}.
type PushOutcome struct {
	Success   bool
	Count     int
	Results   *PushVerdicts
	Conflicts []SyncConflict
	Err       error
}
