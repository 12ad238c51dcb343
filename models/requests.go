// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PullRequest is sent by the client to fetch one page of server-side
// models.
type PullRequest struct {
	// LastSyncAt is the incremental-sync filter: only models modified
	// after this timestamp are returned. Nil forces a full sync with
	// no time filter.
	LastSyncAt *time.Time `json:"last_sync_at"`

	// Limit is the fixed page size.
	Limit int `json:"limit"`

	// Offset is the zero-based index of the first model in this page.
	Offset int `json:"offset"`
}

// PushRequest uploads the entire pending-change ledger in one request.
type PushRequest struct {
	Changes []PendingChange `json:"changes"`

	// Length is the total number of entries in Changes.
	Length int `json:"length"`
}

// RequestLinkRequest asks the server to mail a one-time login link.
type RequestLinkRequest struct {
	Email string `json:"email"`
}

// RefreshRequest exchanges a refresh token for a fresh token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
