// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":        "1.2.3",
		"APP_PULL_PAGE_SIZE": "250",

		"ADAPTER_ADDRESS":         "localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/home/user/.model-keeper/client.db",

		"WORKERS_SYNC_INTERVAL":  "30s",
		"WORKERS_PROBE_INTERVAL": "15s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, 250, cfg.App.PullPageSize)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/home/user/.model-keeper/client.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 15*time.Second, cfg.Workers.ProbeInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_VERSION":     "0.9.0",
		"ADAPTER_ADDRESS": "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// App partially filled
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Zero(t, cfg.App.PullPageSize)

	// Adapter partially filled
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	// Others untouched
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// In this version all nested fields are non-pointer values,
	// so "empty" state is represented by zero values.
	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Workers{}, cfg.Workers)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"WORKERS_SYNC_INTERVAL": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_PULL_PAGE_SIZE",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"STORAGE_DB_DATABASE_URI",

		"WORKERS_SYNC_INTERVAL",
		"WORKERS_PROBE_INTERVAL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
