package service

import (
	"context"

	"github.com/MKhiriev/go-model-keeper/internal/adapter"
	"github.com/MKhiriev/go-model-keeper/internal/config"
	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/internal/store"
	"github.com/MKhiriev/go-model-keeper/internal/workers"
	"github.com/MKhiriev/go-model-keeper/models"
)

type ClientServices struct {
	Ledger      ClientLedgerService
	SyncService ClientSyncService
	AuthService ClientAuthService

	SyncJob      workers.Worker
	Connectivity workers.Worker
}

// NewClientServices wires the service layer: the ledger persists through the
// state store, the sync engine orchestrates pull/push over the adapter, and
// the auth service owns the session lifecycle. The adapter's token-refresh
// and session-expired hooks are registered here so a background refresh is
// persisted and a dead session tears everything down.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	ledger := NewClientLedger(storages.StateStore, log)
	syncSvc := NewClientSyncService(storages, serverAdapter, ledger, cfg.App.PullPageSize, log)
	authSvc := NewClientAuthService(storages, serverAdapter, ledger, syncSvc, log)

	serverAdapter.OnSessionExpired(authSvc.ForceLogout)
	serverAdapter.OnTokensRefreshed(func(pair models.TokenPair) error {
		return storages.StateStore.SaveTokens(context.Background(), pair)
	})

	return &ClientServices{
		Ledger:       ledger,
		SyncService:  syncSvc,
		AuthService:  authSvc,
		SyncJob:      NewClientSyncJob(syncSvc, cfg.Workers.SyncInterval, log),
		Connectivity: NewConnectivityMonitor(serverAdapter, syncSvc, cfg.Workers.ProbeInterval, log),
	}
}
