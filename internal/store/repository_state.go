// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/models"
)

// Keys of the sync_state KV table.
const (
	stateKeyTokens     = "tokens"
	stateKeyUser       = "user"
	stateKeyLastSyncAt = "last_sync_at"
	stateKeyLedger     = "ledger"
)

type stateStore struct {
	*DB
	logger *logger.Logger
}

func NewStateStore(db *DB, logger *logger.Logger) StateStore {
	return &stateStore{
		DB:     db,
		logger: logger,
	}
}

func (s *stateStore) SaveTokens(ctx context.Context, pair models.TokenPair) error {
	return s.setJSON(ctx, stateKeyTokens, pair)
}

func (s *stateStore) Tokens(ctx context.Context) (models.TokenPair, error) {
	var pair models.TokenPair
	if err := s.getJSON(ctx, stateKeyTokens, &pair); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TokenPair{}, ErrSessionNotFound
		}
		return models.TokenPair{}, err
	}
	return pair, nil
}

func (s *stateStore) SaveUser(ctx context.Context, user models.User) error {
	return s.setJSON(ctx, stateKeyUser, user)
}

func (s *stateStore) User(ctx context.Context) (models.User, error) {
	var user models.User
	if err := s.getJSON(ctx, stateKeyUser, &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrSessionNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *stateStore) SaveLastSyncAt(ctx context.Context, at time.Time) error {
	return s.set(ctx, stateKeyLastSyncAt, at.UTC().Format(time.RFC3339Nano))
}

// LastSyncAt returns nil without error when no sync has completed yet.
func (s *stateStore) LastSyncAt(ctx context.Context) (*time.Time, error) {
	value, err := s.get(ctx, stateKeyLastSyncAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	at, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored last_sync_at: %w", err)
	}

	return &at, nil
}

func (s *stateStore) SaveLedger(ctx context.Context, changes []models.PendingChange) error {
	if len(changes) == 0 {
		return s.delete(ctx, stateKeyLedger)
	}
	return s.setJSON(ctx, stateKeyLedger, changes)
}

// Ledger returns an empty slice when nothing is pending.
func (s *stateStore) Ledger(ctx context.Context) ([]models.PendingChange, error) {
	var changes []models.PendingChange
	if err := s.getJSON(ctx, stateKeyLedger, &changes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return changes, nil
}

func (s *stateStore) ClearSession(ctx context.Context) error {
	for _, key := range []string{stateKeyTokens, stateKeyUser, stateKeyLastSyncAt, stateKeyLedger} {
		if err := s.delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *stateStore) set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, setStateValue, key, value); err != nil {
		log.Err(err).
			Str("func", "stateStore.set").
			Str("key", key).
			Msg("failed to upsert state value")
		return fmt.Errorf("failed to save state value (key=%s): %w", key, err)
	}

	return nil
}

func (s *stateStore) get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	row := s.DB.QueryRowContext(ctx, getStateValue, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
		log.Err(err).
			Str("func", "stateStore.get").
			Str("key", key).
			Msg("failed to query state value")
		return "", fmt.Errorf("failed to query state value (key=%s): %w", key, err)
	}

	return value, nil
}

func (s *stateStore) delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteStateValue, key); err != nil {
		log.Err(err).
			Str("func", "stateStore.delete").
			Str("key", key).
			Msg("failed to delete state value")
		return fmt.Errorf("failed to delete state value (key=%s): %w", key, err)
	}

	return nil
}

func (s *stateStore) setJSON(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state value (key=%s): %w", key, err)
	}
	return s.set(ctx, key, string(payload))
}

func (s *stateStore) getJSON(ctx context.Context, key string, dest any) error {
	value, err := s.get(ctx, key)
	if err != nil {
		return err
	}

	if err = json.Unmarshal([]byte(value), dest); err != nil {
		return fmt.Errorf("failed to decode state value (key=%s): %w", key, err)
	}

	return nil
}
