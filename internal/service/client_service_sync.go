// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-model-keeper/internal/adapter"
	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/internal/store"
	"github.com/MKhiriev/go-model-keeper/internal/utils"
	"github.com/MKhiriev/go-model-keeper/models"
)

type clientSyncService struct {
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	ledger   ClientLedgerService
	uuids    *utils.UUIDGenerator
	logger   *logger.Logger

	pageSize int

	online        atomic.Bool
	authenticated atomic.Bool

	// inFlight serialises sync cycles: public entry points TryLock and bail
	// with ErrSyncInFlight, Sync holds it across pull-then-push.
	inFlight sync.Mutex

	stateMu sync.RWMutex
	state   models.SyncState
}

func NewClientSyncService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, ledger ClientLedgerService, pageSize int, logger *logger.Logger) ClientSyncService {
	if pageSize <= 0 {
		pageSize = 100
	}

	s := &clientSyncService{
		storages: storages,
		adapter:  serverAdapter,
		ledger:   ledger,
		uuids:    utils.NewUUIDGenerator(),
		logger:   logger,
		pageSize: pageSize,
		state:    models.SyncState{Status: models.SyncStatusIdle},
	}
	s.online.Store(true)

	return s
}

// Sync implements [ClientSyncService]. Pull always precedes push so the push
// carries the freshest version stamps; the push runs even when the pull
// failed, unless the failure was loss of connectivity.
func (s *clientSyncService) Sync(ctx context.Context) error {
	if !s.Online() {
		return nil
	}
	if !s.inFlight.TryLock() {
		return ErrSyncInFlight
	}
	defer s.inFlight.Unlock()

	pullErr := s.pull(ctx)
	if pullErr != nil && !s.Online() {
		// соединение пропало посреди цикла — push не имеет смысла
		return nil
	}

	if outcome := s.push(ctx); outcome.Err != nil {
		return outcome.Err
	}

	return pullErr
}

// Pull implements [ClientSyncService].
func (s *clientSyncService) Pull(ctx context.Context) error {
	if !s.inFlight.TryLock() {
		return ErrSyncInFlight
	}
	defer s.inFlight.Unlock()

	return s.pull(ctx)
}

// Push implements [ClientSyncService].
func (s *clientSyncService) Push(ctx context.Context) models.PushOutcome {
	if !s.inFlight.TryLock() {
		return models.PushOutcome{Err: ErrSyncInFlight}
	}
	defer s.inFlight.Unlock()

	return s.push(ctx)
}

// PushAllModels implements [ClientSyncService]. It stages the entire local
// collection as creates and runs one sync cycle, migrating a collection that
// predates synchronization onto the server.
func (s *clientSyncService) PushAllModels(ctx context.Context) error {
	items, err := s.storages.ModelRepository.AllModels(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = s.uuids.Generate()
		}
	}

	if err = s.ledger.TrackChangeBatch(ctx, models.OpCreate, items); err != nil {
		return err
	}

	s.logger.Info().
		Str("func", "clientSyncService.PushAllModels").
		Int("count", len(items)).
		Msg("staged local collection for migration")

	return s.Sync(ctx)
}

// Status implements [ClientSyncService].
func (s *clientSyncService) Status() models.SyncState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	state := s.state
	state.PendingCount = s.ledger.PendingCount()
	return state
}

// ModelsLoaded implements [ClientSyncService].
func (s *clientSyncService) ModelsLoaded() bool {
	return s.storages.ModelRepository.Loaded()
}

// SetOnline implements [ClientSyncService].
func (s *clientSyncService) SetOnline(online bool) {
	was := s.online.Swap(online)
	if was == online {
		return
	}

	if online {
		s.setStatus(models.SyncStatusIdle)
		s.logger.Info().Str("func", "clientSyncService.SetOnline").Msg("server reachable again")
		return
	}

	s.setStatus(models.SyncStatusOffline)
	s.logger.Warn().Str("func", "clientSyncService.SetOnline").Msg("server unreachable, entering offline mode")
}

// Online implements [ClientSyncService].
func (s *clientSyncService) Online() bool {
	return s.online.Load()
}

// SetAuthenticated implements [ClientSyncService].
func (s *clientSyncService) SetAuthenticated(authenticated bool) {
	s.authenticated.Store(authenticated)
}

func (s *clientSyncService) setStatus(status models.SyncStatus) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state.Status = status
	if status != models.SyncStatusError {
		s.state.LastError = ""
	}
}

func (s *clientSyncService) recordFailure(err error) {
	status := models.SyncStatusError
	if !s.Online() {
		status = models.SyncStatusOffline
	}

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state.Status = status
	s.state.LastError = err.Error()
}

func (s *clientSyncService) recordSuccess(serverTime time.Time) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state.Status = models.SyncStatusIdle
	s.state.LastError = ""
	at := serverTime
	s.state.LastSyncAt = &at
}

func (s *clientSyncService) persistLastSyncAt(ctx context.Context, serverTime time.Time) {
	if err := s.storages.StateStore.SaveLastSyncAt(ctx, serverTime); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientSyncService.persistLastSyncAt").
			Msg("failed to persist last sync time")
	}
}
