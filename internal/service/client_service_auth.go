package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-model-keeper/internal/adapter"
	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/internal/store"
	"github.com/MKhiriev/go-model-keeper/internal/utils"
	"github.com/MKhiriev/go-model-keeper/models"
)

type clientAuthService struct {
	storages    *store.ClientStorages
	adapter     adapter.ServerAdapter
	ledger      ClientLedgerService
	syncService ClientSyncService
	logger      *logger.Logger
}

func NewClientAuthService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, ledger ClientLedgerService, syncService ClientSyncService, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		storages:    storages,
		adapter:     serverAdapter,
		ledger:      ledger,
		syncService: syncService,
		logger:      logger,
	}
}

// RequestLink implements [ClientAuthService].
func (a *clientAuthService) RequestLink(ctx context.Context, email string) error {
	if err := a.adapter.RequestLink(ctx, email); err != nil {
		return fmt.Errorf("%w: %w", ErrRequestLinkFailed, mapAdapterError(err))
	}

	a.logger.Info().
		Str("func", "clientAuthService.RequestLink").
		Str("email", email).
		Msg("login link requested")

	return nil
}

// VerifyLink implements [ClientAuthService].
func (a *clientAuthService) VerifyLink(ctx context.Context, token string) (models.User, error) {
	session, err := a.adapter.VerifyLink(ctx, token)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrVerifyLinkFailed, mapAdapterError(err))
	}

	return session.User, a.establishSession(ctx, session.Tokens(), session.User)
}

// RestoreSession implements [ClientAuthService]. It rehydrates a persisted
// session: the tokens go back into the adapter, the ledger is reloaded, and
// the engine resumes where the previous run stopped. The access token may
// already be expired; the adapter refreshes it on the first request.
func (a *clientAuthService) RestoreSession(ctx context.Context) (models.User, error) {
	pair, err := a.storages.StateStore.Tokens(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, ErrNotAuthenticated
		}
		return models.User{}, fmt.Errorf("load persisted tokens: %w", err)
	}
	if pair.Empty() {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := a.storages.StateStore.User(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, fmt.Errorf("load persisted user: %w", err)
		}
		// профиль потерян, но subject токена хватает для корреляции
		if sub, subErr := utils.ParseUserIDFromJWT(pair.AccessToken); subErr == nil {
			user.ID = sub
		}
	}

	if expiresAt := pair.AccessExpiresAt(); !expiresAt.IsZero() {
		a.logger.Debug().
			Str("func", "clientAuthService.RestoreSession").
			Time("access_expires_at", expiresAt).
			Bool("expired", expiresAt.Before(time.Now())).
			Msg("restoring persisted session")
	}

	a.adapter.SetTokens(pair)
	if err = a.ledger.Activate(ctx); err != nil {
		return models.User{}, err
	}
	a.syncService.SetAuthenticated(true)

	return user, nil
}

// Logout implements [ClientAuthService]. The server call is best effort: a
// dead server must not keep the user logged in locally.
func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Warn().Err(err).
			Str("func", "clientAuthService.Logout").
			Msg("server-side logout failed, clearing local session anyway")
	}

	a.ForceLogout()
	return nil
}

// ForceLogout implements [ClientAuthService]. Pending changes belong to the
// session that recorded them, so the ledger is cleared along with the
// credentials.
func (a *clientAuthService) ForceLogout() {
	ctx := context.Background()

	a.syncService.SetAuthenticated(false)
	a.ledger.Deactivate()
	if err := a.ledger.Clear(ctx); err != nil {
		a.logger.Warn().Err(err).
			Str("func", "clientAuthService.ForceLogout").
			Msg("failed to clear pending ledger")
	}

	if err := a.storages.StateStore.ClearSession(ctx); err != nil {
		a.logger.Warn().Err(err).
			Str("func", "clientAuthService.ForceLogout").
			Msg("failed to clear persisted session")
	}

	a.adapter.SetTokens(models.TokenPair{})

	a.logger.Info().
		Str("func", "clientAuthService.ForceLogout").
		Msg("session cleared")
}

func (a *clientAuthService) establishSession(ctx context.Context, pair models.TokenPair, user models.User) error {
	if err := a.storages.StateStore.SaveTokens(ctx, pair); err != nil {
		return fmt.Errorf("persist session tokens: %w", err)
	}
	if err := a.storages.StateStore.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("persist session user: %w", err)
	}

	if err := a.ledger.Activate(ctx); err != nil {
		return err
	}
	a.syncService.SetAuthenticated(true)

	a.logger.Info().
		Str("func", "clientAuthService.establishSession").
		Str("user_id", user.ID).
		Msg("session established")

	return nil
}
