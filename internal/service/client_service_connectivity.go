package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-model-keeper/internal/adapter"
	"github.com/MKhiriev/go-model-keeper/internal/logger"
)

// connectivityMonitor probes server reachability on a fixed interval and
// feeds transitions into the sync engine. Any HTTP answer counts as
// reachable, even an error status: only a failed connection means offline.
type connectivityMonitor struct {
	adapter     adapter.ServerAdapter
	syncService ClientSyncService
	interval    time.Duration
	logger      *logger.Logger
}

// NewConnectivityMonitor creates the reachability worker. The monitor is idle
// until Run is called; interval defaults to 15 seconds.
func NewConnectivityMonitor(serverAdapter adapter.ServerAdapter, syncService ClientSyncService, interval time.Duration, logger *logger.Logger) *connectivityMonitor {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &connectivityMonitor{
		adapter:     serverAdapter,
		syncService: syncService,
		interval:    interval,
		logger:      logger,
	}
}

// Run implements [workers.Worker]. It blocks until ctx is cancelled.
func (m *connectivityMonitor) Run(ctx context.Context) {
	t := time.NewTicker(m.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.probe(ctx)
		}
	}
}

func (m *connectivityMonitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	_, err := m.adapter.Status(probeCtx)
	reachable := isServerReachable(err)

	wasOnline := m.syncService.Online()
	m.syncService.SetOnline(reachable)

	switch {
	case reachable && !wasOnline:
		// соединение вернулось — сразу догоняем сервер
		if syncErr := m.syncService.Sync(ctx); syncErr != nil && !errors.Is(syncErr, ErrSyncInFlight) {
			m.logger.Warn().Err(syncErr).
				Str("func", "connectivityMonitor.probe").
				Msg("reconnect sync failed")
		}
	case !reachable && wasOnline:
		m.logger.Warn().Err(err).
			Str("func", "connectivityMonitor.probe").
			Msg("server became unreachable")
	}
}
