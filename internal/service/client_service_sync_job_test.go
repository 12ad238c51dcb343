// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-model-keeper/internal/logger"
	"github.com/MKhiriev/go-model-keeper/internal/mock"
	"github.com/MKhiriev/go-model-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestClientSyncJob_DefaultInterval(t *testing.T) {
	j := NewClientSyncJob(nil, 0, logger.Nop())
	assert.Equal(t, 30*time.Second, j.interval)
}

func TestClientSyncJob_Tick_SkipsWhileOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSync := mock.NewMockClientSyncService(ctrl)
	mockSync.EXPECT().Online().Return(false)

	j := NewClientSyncJob(mockSync, time.Minute, logger.Nop())
	j.tick(context.Background())
}

func TestClientSyncJob_Tick_SkipsWhenNothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSync := mock.NewMockClientSyncService(ctrl)
	mockSync.EXPECT().Online().Return(true)
	mockSync.EXPECT().ModelsLoaded().Return(true)
	mockSync.EXPECT().Status().Return(models.SyncState{PendingCount: 0})

	j := NewClientSyncJob(mockSync, time.Minute, logger.Nop())
	j.tick(context.Background())
}

func TestClientSyncJob_Tick_InitialSyncRunsUnconditionally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockSync := mock.NewMockClientSyncService(ctrl)
	mockSync.EXPECT().Online().Return(true)
	// кэш ещё не загружался — Sync идёт даже при пустом ledger
	mockSync.EXPECT().ModelsLoaded().Return(false)
	mockSync.EXPECT().Sync(ctx).Return(nil)

	j := NewClientSyncJob(mockSync, time.Minute, logger.Nop())
	j.tick(ctx)
}

func TestClientSyncJob_Tick_SyncsWhenChangesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockSync := mock.NewMockClientSyncService(ctrl)
	mockSync.EXPECT().Online().Return(true)
	mockSync.EXPECT().ModelsLoaded().Return(true)
	mockSync.EXPECT().Status().Return(models.SyncState{PendingCount: 2})
	mockSync.EXPECT().Sync(ctx).Return(nil)

	j := NewClientSyncJob(mockSync, time.Minute, logger.Nop())
	j.tick(ctx)
}

func TestClientSyncJob_Tick_InFlightCycleIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockSync := mock.NewMockClientSyncService(ctrl)
	mockSync.EXPECT().Online().Return(true)
	mockSync.EXPECT().ModelsLoaded().Return(false)
	mockSync.EXPECT().Sync(ctx).Return(ErrSyncInFlight)

	j := NewClientSyncJob(mockSync, time.Minute, logger.Nop())
	j.tick(ctx)
}

func TestClientSyncJob_Run_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSync := mock.NewMockClientSyncService(ctrl)
	mockSync.EXPECT().Online().Return(false).AnyTimes()

	j := NewClientSyncJob(mockSync, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
