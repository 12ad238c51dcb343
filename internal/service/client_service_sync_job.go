package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-model-keeper/internal/logger"
)

// clientSyncJob periodically drives the sync engine. A tick is skipped unless
// the client is online, authenticated work is pending, and no cycle is
// already running; the first tick after authentication runs unconditionally
// so a fresh session converges without waiting for local edits.
type clientSyncJob struct {
	syncService ClientSyncService
	interval    time.Duration
	logger      *logger.Logger
}

// NewClientSyncJob creates the periodic sync worker. The job is idle until
// Run is called; interval defaults to 30 seconds.
func NewClientSyncJob(syncService ClientSyncService, interval time.Duration, logger *logger.Logger) *clientSyncJob {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &clientSyncJob{syncService: syncService, interval: interval, logger: logger}
}

// Run implements [workers.Worker]. It blocks until ctx is cancelled.
func (j *clientSyncJob) Run(ctx context.Context) {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			j.tick(ctx)
		}
	}
}

func (j *clientSyncJob) tick(ctx context.Context) {
	if !j.syncService.Online() {
		return
	}

	// до первого merge локальный кэш пуст — инициирующий Sync обязателен
	initial := !j.syncService.ModelsLoaded()
	if !initial && j.syncService.Status().PendingCount == 0 {
		return
	}

	if err := j.syncService.Sync(ctx); err != nil && !errors.Is(err, ErrSyncInFlight) {
		j.logger.Warn().Err(err).
			Str("func", "clientSyncJob.tick").
			Bool("initial", initial).
			Msg("periodic sync failed")
	}
}
