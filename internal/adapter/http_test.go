// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-model-keeper/internal/config"
	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.Nop()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeTokenExpired(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(errorBody{Code: tokenExpiredCode, Message: "access token expired"})
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/status", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.StatusResponse{ActiveModelCount: 42})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "sometoken", RefreshToken: "refresh"})

	got, err := a.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, got.ActiveModelCount)
}

func TestStatus_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Status(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Pull ─────────────────────────────────────────────────────────────────────

func TestPull_Success(t *testing.T) {
	serverTime := time.Now().UTC().Truncate(time.Second)
	want := models.PullResponse{
		Models:          []models.Model{{ID: "m-1", Name: "alpha"}},
		ServerTime:      serverTime,
		Count:           1,
		Total:           1,
		SharedLibraries: []models.SharedLibrary{{ID: "lib-1"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync/pull", r.URL.Path)

		var req models.PullRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 100, req.Limit)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "sometoken"})

	got, err := a.Pull(context.Background(), models.PullRequest{Limit: 100})

	require.NoError(t, err)
	require.Len(t, got.Models, 1)
	assert.Equal(t, "m-1", got.Models[0].ID)
	assert.True(t, got.ServerTime.Equal(serverTime))
	require.Len(t, got.SharedLibraries, 1)
}

func TestPull_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("no session"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Pull(context.Background(), models.PullRequest{Limit: 100})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Push ─────────────────────────────────────────────────────────────────────

func TestPush_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync/push", r.URL.Path)

		var req models.PushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Length) // адаптер сам проставляет длину

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PushResponse{
			ServerTime: time.Now().UTC(),
			Results: models.PushVerdicts{
				Created: []string{"m-1"},
				Conflicts: []models.SyncConflict{
					{ModelID: "m-2", Reason: models.ConflictVersionMismatch},
				},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "sometoken"})

	got, err := a.Push(context.Background(), models.PushRequest{
		Changes: []models.PendingChange{
			{Op: models.OpCreate, Model: models.Model{ID: "m-1"}},
			{Op: models.OpUpdate, Model: models.Model{ID: "m-2"}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"m-1"}, got.Results.Created)
	require.Len(t, got.Results.Conflicts, 1)
	assert.Equal(t, models.ConflictVersionMismatch, got.Results.Conflicts[0].Reason)
}

func TestPush_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("no changes provided"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Push(context.Background(), models.PushRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── RequestLink / VerifyLink ─────────────────────────────────────────────────

func TestRequestLink_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/request-link", r.URL.Path)

		var req models.RequestLinkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.RequestLink(context.Background(), "alice@example.com")
	require.NoError(t, err)
}

func TestVerifyLink_Success(t *testing.T) {
	want := models.VerifyResponse{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		User:         models.User{ID: "u-1", Email: "alice@example.com"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/verify/magic-token", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.VerifyLink(context.Background(), "magic-token")

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.User.ID)
	assert.Equal(t, want.Tokens(), a.Tokens())
}

func TestVerifyLink_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("link expired or unknown"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.VerifyLink(context.Background(), "stale-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, a.Tokens().Empty())
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestRefresh_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/refresh", r.URL.Path)

		var req models.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "old-refresh", req.RefreshToken)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "old-access", RefreshToken: "old-refresh"})

	var saved models.TokenPair
	a.OnTokensRefreshed(func(pair models.TokenPair) error {
		saved = pair
		return nil
	})

	pair, err := a.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, pair, a.Tokens())
	assert.Equal(t, pair, saved)
}

func TestRefresh_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("refresh token revoked"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{RefreshToken: "revoked"})

	_, err := a.Refresh(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestRefresh_NoRefreshToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	_, err := a.Refresh(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "sometoken"})

	require.NoError(t, a.Logout(context.Background()))
}

// ── refresh-and-retry ────────────────────────────────────────────────────────

func TestAuthedDo_RefreshesOnceAndRetries(t *testing.T) {
	statusCalls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sync/status":
			statusCalls++
			if statusCalls == 1 {
				assert.Equal(t, "Bearer stale-access", r.Header.Get("Authorization"))
				writeTokenExpired(w)
				return
			}
			// повторный запрос обязан идти уже с новым access-токеном
			assert.Equal(t, "Bearer fresh-access", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.StatusResponse{ActiveModelCount: 7})
		case "/api/auth/refresh":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.TokenPair{AccessToken: "fresh-access", RefreshToken: "fresh-refresh"})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "stale-access", RefreshToken: "valid-refresh"})

	var saved models.TokenPair
	a.OnTokensRefreshed(func(pair models.TokenPair) error {
		saved = pair
		return nil
	})

	got, err := a.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, got.ActiveModelCount)
	assert.Equal(t, 2, statusCalls)
	assert.Equal(t, "fresh-access", a.Tokens().AccessToken)
	assert.Equal(t, "fresh-refresh", saved.RefreshToken)
}

func TestAuthedDo_SecondUnauthorizedExpiresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sync/status":
			writeTokenExpired(w)
		case "/api/auth/refresh":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(models.TokenPair{AccessToken: "fresh-access", RefreshToken: "fresh-refresh"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "stale-access", RefreshToken: "valid-refresh"})

	expired := false
	a.OnSessionExpired(func() { expired = true })

	_, err := a.Status(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, expired, "session-expired hook must fire after a second 401")
}

func TestAuthedDo_RefreshFailureExpiresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sync/status":
			writeTokenExpired(w)
		case "/api/auth/refresh":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("refresh token revoked"))
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "stale-access", RefreshToken: "revoked"})

	expired := false
	a.OnSessionExpired(func() { expired = true })

	_, err := a.Status(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, expired)
}

func TestAuthedDo_PlainUnauthorizedNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("no session"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{AccessToken: "sometoken", RefreshToken: "refresh"})

	_, err := a.Status(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, calls, "401 without TOKEN_EXPIRED code must not trigger a refresh")
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
