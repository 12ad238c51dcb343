package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/internal/service"
	"github.com/MKhiriev/go-model-keeper/internal/workers"
)

// App is the client runtime: it restores the persisted session, runs an
// initial sync cycle, and keeps the background workers alive until the
// process is told to stop.
type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}

	return &App{
		services: services,
		workers:  workers.NewWorkers(services.SyncJob, services.Connectivity),
		logger:   log,
	}, nil
}

// Run implements [Client]. It blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	user, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		a.logger.Info().
			Str("func", "App.Run").
			Msg("no persisted session, waiting for magic-link login")
	case err != nil:
		return fmt.Errorf("restore session: %w", err)
	default:
		a.logger.Info().
			Str("func", "App.Run").
			Str("user_id", user.ID).
			Str("email", user.Email).
			Msg("session restored")

		// лучший момент догнать сервер — сразу после рестора; провал не
		// фатален, фоновые джобы доведут до сходимости
		if syncErr := a.services.SyncService.Sync(ctx); syncErr != nil {
			a.logger.Warn().Err(syncErr).
				Str("func", "App.Run").
				Msg("initial sync failed, background jobs will catch up")
		}
	}

	a.workers.Run(ctx)

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}
