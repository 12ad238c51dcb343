package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/internal/store"
	"github.com/MKhiriev/go-model-keeper/models"
)

type clientLedger struct {
	state  store.StateStore
	logger *logger.Logger

	mu      sync.Mutex
	active  bool
	entries []models.PendingChange
}

func NewClientLedger(state store.StateStore, logger *logger.Logger) ClientLedgerService {
	return &clientLedger{state: state, logger: logger}
}

// Activate implements [ClientLedgerService]. It loads the ledger persisted by
// a previous run so unsynchronized work survives restarts.
func (l *clientLedger) Activate(ctx context.Context) error {
	entries, err := l.state.Ledger(ctx)
	if err != nil {
		return fmt.Errorf("load persisted ledger: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = true
	l.entries = entries

	l.logger.Debug().
		Str("func", "clientLedger.Activate").
		Int("pending", len(entries)).
		Msg("ledger activated")

	return nil
}

// Deactivate implements [ClientLedgerService].
func (l *clientLedger) Deactivate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = false
}

// TrackChange implements [ClientLedgerService]. Consolidation keeps at most
// one entry per model:
//   - an incoming create replaces whatever is pending;
//   - an update folds into a pending create (the server still sees a create)
//     and otherwise becomes the pending entry;
//   - a delete cancels a pending create outright, and otherwise replaces the
//     entry with a minimized delete carrying only ID and UpdatedAt.
//
// Any consolidation resets the entry's retry counter.
func (l *clientLedger) TrackChange(ctx context.Context, op models.ChangeOp, model models.Model) error {
	return l.TrackChangeBatch(ctx, op, []models.Model{model})
}

// TrackChangeBatch implements [ClientLedgerService]. It applies every item
// under one lock and persists once.
func (l *clientLedger) TrackChangeBatch(ctx context.Context, op models.ChangeOp, items []models.Model) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.active {
		return nil
	}

	for _, model := range items {
		if model.ID == "" {
			l.logger.Warn().
				Str("func", "clientLedger.TrackChangeBatch").
				Str("op", string(op)).
				Msg("skipping change for model without id")
			continue
		}
		l.consolidate(op, model)
	}

	return l.persistLocked(ctx)
}

func (l *clientLedger) consolidate(op models.ChangeOp, model models.Model) {
	idx := l.indexOf(model.ID)

	if idx < 0 {
		l.entries = append(l.entries, newEntry(op, model))
		return
	}

	existing := l.entries[idx]

	switch op {
	case models.OpCreate:
		l.entries[idx] = newEntry(models.OpCreate, model)

	case models.OpUpdate:
		if existing.Op == models.OpCreate {
			// сервер модели ещё не видел — остаёмся create с новым payload
			l.entries[idx] = newEntry(models.OpCreate, model)
			return
		}
		l.entries[idx] = newEntry(models.OpUpdate, model)

	case models.OpDelete:
		if existing.Op == models.OpCreate {
			// create + delete аннигилируют: серверу нечего сообщать
			l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
			return
		}
		l.entries[idx] = newEntry(models.OpDelete, model)
	}
}

func newEntry(op models.ChangeOp, model models.Model) models.PendingChange {
	if op == models.OpDelete {
		// delete minimizes the payload: the server only needs the id and the
		// stamp the removal was based on
		model = models.Model{ID: model.ID, UpdatedAt: model.UpdatedAt}
	}
	return models.PendingChange{Op: op, Model: model}
}

// Changes implements [ClientLedgerService].
func (l *clientLedger) Changes() []models.PendingChange {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.PendingChange, len(l.entries))
	copy(out, l.entries)
	return out
}

// PendingCount implements [ClientLedgerService].
func (l *clientLedger) PendingCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// PendingDeletes implements [ClientLedgerService].
func (l *clientLedger) PendingDeletes() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, entry := range l.entries {
		if entry.Op == models.OpDelete {
			count++
		}
	}
	return count
}

// Remove implements [ClientLedgerService].
func (l *clientLedger) Remove(ctx context.Context, modelID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(modelID)
	if idx < 0 {
		return nil
	}

	l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
	return l.persistLocked(ctx)
}

// Bump implements [ClientLedgerService].
func (l *clientLedger) Bump(ctx context.Context, modelID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(modelID)
	if idx < 0 {
		return 0, nil
	}

	l.entries[idx].RetryCount++
	return l.entries[idx].RetryCount, l.persistLocked(ctx)
}

// Clear implements [ClientLedgerService].
func (l *clientLedger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
	return l.persistLocked(ctx)
}

func (l *clientLedger) indexOf(modelID string) int {
	for i, entry := range l.entries {
		if entry.Model.ID == modelID {
			return i
		}
	}
	return -1
}

// persistLocked writes the ledger through the state store. A write failure
// must never leave a half-written ledger on disk that disagrees with memory,
// so the in-memory ledger is dropped along with the persisted one.
func (l *clientLedger) persistLocked(ctx context.Context) error {
	if err := l.state.SaveLedger(ctx, l.entries); err != nil {
		l.logger.Error().Err(err).
			Str("func", "clientLedger.persistLocked").
			Int("pending", len(l.entries)).
			Msg("failed to persist ledger, dropping pending changes")
		l.entries = nil
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}
