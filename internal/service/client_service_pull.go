package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-model-keeper/models"
)

// pull refreshes the local cache from the server. Caller must hold the
// in-flight lock.
//
// The full-vs-incremental decision compares what the server holds against
// what the client holds: pending local deletes are subtracted from the server
// count first, otherwise a client that just deleted models would keep seeing
// a shortfall and re-run full syncs forever.
func (s *clientSyncService) pull(ctx context.Context) error {
	if !s.authenticated.Load() {
		return nil
	}
	if !s.Online() {
		return nil
	}

	s.setStatus(models.SyncStatusSyncing)

	status, err := s.adapter.Status(ctx)
	if err != nil {
		return s.failPull(fmt.Errorf("probe sync status: %w", mapAdapterError(err)))
	}

	lastSyncAt, err := s.storages.StateStore.LastSyncAt(ctx)
	if err != nil {
		return s.failPull(fmt.Errorf("load last sync time: %w", err))
	}

	localCount, err := s.storages.ModelRepository.CountOwnedModels(ctx)
	if err != nil {
		return s.failPull(fmt.Errorf("count local models: %w", err))
	}

	expected := status.ActiveModelCount - s.ledger.PendingDeletes()
	full := lastSyncAt == nil || localCount < expected

	since := lastSyncAt
	if full {
		since = nil
	}

	collected, libraries, serverTime, err := s.fetchPages(ctx, since)
	if err != nil {
		return s.failPull(err)
	}

	// merge runs even for an empty page set: the shared-library list may have
	// shrunk, and the merge prunes revoked models
	if err = s.storages.ModelRepository.MergeModels(ctx, collected, libraries); err != nil {
		return s.failPull(fmt.Errorf("merge pulled models: %w", err))
	}

	s.persistLastSyncAt(ctx, serverTime)
	s.recordSuccess(serverTime)

	s.logger.Info().
		Str("func", "clientSyncService.pull").
		Bool("full", full).
		Int("server_count", status.ActiveModelCount).
		Int("local_count", localCount).
		Int("pulled", len(collected)).
		Int("libraries", len(libraries)).
		Msg("pull completed")

	return nil
}

// fetchPages walks the pull pagination sequentially and accumulates every
// page. The shared-library list from the latest page wins.
func (s *clientSyncService) fetchPages(ctx context.Context, since *time.Time) ([]models.Model, []models.SharedLibrary, time.Time, error) {
	var (
		collected  []models.Model
		libraries  []models.SharedLibrary
		serverTime time.Time
	)

	for offset := 0; ; {
		page, err := s.adapter.Pull(ctx, models.PullRequest{
			LastSyncAt: since,
			Limit:      s.pageSize,
			Offset:     offset,
		})
		if err != nil {
			return nil, nil, time.Time{}, fmt.Errorf("pull page at offset %d: %w", offset, mapAdapterError(err))
		}

		collected = append(collected, page.Models...)
		serverTime = page.ServerTime
		if page.SharedLibraries != nil {
			libraries = page.SharedLibraries
		}

		// an empty page claiming more data would loop forever
		if !page.HasMore || len(page.Models) == 0 {
			break
		}
		offset += len(page.Models)
	}

	return collected, libraries, serverTime, nil
}

func (s *clientSyncService) failPull(err error) error {
	s.recordFailure(err)
	s.logger.Error().Err(err).
		Str("func", "clientSyncService.pull").
		Msg("pull failed")
	return err
}
