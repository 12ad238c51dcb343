package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-model-keeper/models"
	"github.com/sethvargo/go-retry"
)

// pushRetryCeiling is the number of version_mismatch verdicts an entry may
// collect before the push engine abandons it.
const pushRetryCeiling = 3

// push uploads the whole ledger in one request and settles every entry
// against the server's verdict. Caller must hold the in-flight lock.
func (s *clientSyncService) push(ctx context.Context) models.PushOutcome {
	changes := s.ledger.Changes()

	if len(changes) == 0 || !s.Online() || !s.authenticated.Load() {
		return models.PushOutcome{Success: true, Count: 0}
	}

	s.setStatus(models.SyncStatusSyncing)

	resp, err := s.adapter.Push(ctx, models.PushRequest{Changes: changes})
	if err != nil {
		err = fmt.Errorf("push ledger: %w", mapAdapterError(err))
		s.recordFailure(err)
		s.logger.Error().Err(err).
			Str("func", "clientSyncService.push").
			Int("count", len(changes)).
			Msg("push failed")
		return models.PushOutcome{Count: len(changes), Err: err}
	}

	conflicts := s.settleVerdicts(ctx, changes, resp.Results)

	s.persistLastSyncAt(ctx, resp.ServerTime)
	s.recordSuccess(resp.ServerTime)

	if hasRetryableConflict(conflicts) {
		// fresh stamps are needed before these entries can succeed; the
		// remedial pull runs in the background and the entries simply ride
		// along with the next push
		s.scheduleRemedialPull(ctx)
	}

	return models.PushOutcome{
		Success:   true,
		Count:     len(changes),
		Results:   &resp.Results,
		Conflicts: conflicts,
	}
}

// settleVerdicts applies the server's per-item decisions to the ledger:
// accepted entries leave the ledger, fatal conflicts are dropped immediately,
// and retryable conflicts stay until they hit the retry ceiling.
func (s *clientSyncService) settleVerdicts(ctx context.Context, changes []models.PendingChange, verdicts models.PushVerdicts) []models.SyncConflict {
	conflictByID := make(map[string]models.SyncConflict, len(verdicts.Conflicts))
	for _, conflict := range verdicts.Conflicts {
		conflictByID[conflict.ModelID] = conflict
	}

	for _, change := range changes {
		id := change.Model.ID

		if verdicts.Accepted(id) {
			if err := s.ledger.Remove(ctx, id); err != nil {
				s.logger.Warn().Err(err).Str("model_id", id).Msg("failed to settle accepted change")
			}
			continue
		}

		conflict, ok := conflictByID[id]
		if !ok {
			// сервер не вынес вердикта — изменение остаётся до следующего цикла
			continue
		}

		if !conflict.Retryable() {
			s.logger.Warn().
				Str("func", "clientSyncService.settleVerdicts").
				Str("model_id", id).
				Str("reason", string(conflict.Reason)).
				Msg("dropping change rejected by server")
			if err := s.ledger.Remove(ctx, id); err != nil {
				s.logger.Warn().Err(err).Str("model_id", id).Msg("failed to drop rejected change")
			}
			continue
		}

		retries, err := s.ledger.Bump(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("model_id", id).Msg("failed to bump retry counter")
			continue
		}
		if retries >= pushRetryCeiling {
			s.logger.Warn().
				Str("func", "clientSyncService.settleVerdicts").
				Str("model_id", id).
				Int("retries", retries).
				Msg("abandoning change after repeated version conflicts")
			if err = s.ledger.Remove(ctx, id); err != nil {
				s.logger.Warn().Err(err).Str("model_id", id).Msg("failed to abandon conflicted change")
			}
		}
	}

	return verdicts.Conflicts
}

func hasRetryableConflict(conflicts []models.SyncConflict) bool {
	for _, conflict := range conflicts {
		if conflict.Retryable() {
			return true
		}
	}
	return false
}

// scheduleRemedialPull refreshes local version stamps in the background after
// a version_mismatch verdict. Not awaited: Sync always pulls before pushing,
// so even a lost remedial pull only delays the retry by one cycle. The pull
// inherits the triggering call's context, so shutdown cancels it too.
func (s *clientSyncService) scheduleRemedialPull(ctx context.Context) {
	go func() {
		backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))

		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			if !s.inFlight.TryLock() {
				return retry.RetryableError(ErrSyncInFlight)
			}
			defer s.inFlight.Unlock()

			if err := s.pull(ctx); err != nil {
				return retry.RetryableError(err)
			}
			return nil
		})
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "clientSyncService.scheduleRemedialPull").
				Msg("remedial pull gave up")
		}
	}()
}
