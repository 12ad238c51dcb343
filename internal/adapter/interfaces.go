// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the model-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) that manages the bearer-token lifecycle: it attaches
// the access token to every authenticated request and transparently performs a
// single refresh-and-retry when the server reports an expired access token.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrSessionExpired] when the
// refresh token itself is rejected).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-model-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the model-keeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetTokens stores the access/refresh pair attached to all subsequent
	// authenticated requests. Called after VerifyLink, after a successful
	// refresh, and at startup when a persisted session is restored.
	SetTokens(pair models.TokenPair)

	// Tokens returns the pair currently held by the adapter, or an empty
	// pair if the client is unauthenticated.
	Tokens() models.TokenPair

	// OnTokensRefreshed registers a callback invoked with every pair the
	// adapter obtains on its own (i.e. during a transparent refresh), so the
	// session can be persisted outside the adapter.
	OnTokensRefreshed(fn func(models.TokenPair) error)

	// OnSessionExpired registers a callback fired when the session cannot be
	// recovered: the refresh token was rejected, or a retried request came
	// back unauthorized again.
	OnSessionExpired(fn func())

	// Status probes GET /api/sync/status and returns the authoritative count
	// of active models the server holds for the user.
	Status(ctx context.Context) (models.StatusResponse, error)

	// Pull fetches one page of server-side models via POST /api/sync/pull.
	Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error)

	// Push uploads the pending-change ledger via POST /api/sync/push and
	// returns the server's per-item verdicts.
	Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error)

	// RequestLink asks the server to mail a one-time login link to email.
	RequestLink(ctx context.Context, email string) error

	// VerifyLink exchanges a magic-link token for a session. On success the
	// returned pair is stored via SetTokens.
	VerifyLink(ctx context.Context, token string) (models.VerifyResponse, error)

	// Refresh exchanges the held refresh token for a fresh pair and stores
	// it via SetTokens. Returns [ErrSessionExpired] (wrapped) if the refresh
	// token is rejected.
	Refresh(ctx context.Context) (models.TokenPair, error)

	// Logout invalidates the session server-side. Local state is untouched;
	// clearing credentials is the caller's responsibility.
	Logout(ctx context.Context) error
}
