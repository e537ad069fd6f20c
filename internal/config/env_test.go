// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_GEMINI_API_KEY": "secret",
		"APP_LANGUAGE":       "th",
		"APP_LOG_FILE":       "/tmp/ideavoice.log",

		"STORAGE_DB_DSN": "/var/lib/ideavoice/notes.db",

		"ADAPTER_BACKEND":         "http",
		"ADAPTER_MODEL":           "gemini-2.5-pro",
		"ADAPTER_ADDRESS":         "http://localhost:8090",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"CAPTURE_SAMPLE_RATE": "44100",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "secret", cfg.App.GeminiAPIKey)
	assert.Equal(t, "th", cfg.App.Language)
	assert.Equal(t, "/tmp/ideavoice.log", cfg.App.LogFile)

	assert.Equal(t, "/var/lib/ideavoice/notes.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "http", cfg.Adapter.Backend)
	assert.Equal(t, "gemini-2.5-pro", cfg.Adapter.Model)
	assert.Equal(t, "http://localhost:8090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 44100, cfg.Capture.SampleRate)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DSN": "notes.db",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Adapter.Backend)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_LegacyAPIKey(t *testing.T) {
	t.Run("fallback used when prefixed key is absent", func(t *testing.T) {
		t.Setenv("APP_GEMINI_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "legacy")

		cfg := &StructuredConfig{}
		require.NoError(t, parseEnv(cfg))
		assert.Equal(t, "legacy", cfg.App.GeminiAPIKey)
	})

	t.Run("prefixed key wins", func(t *testing.T) {
		t.Setenv("APP_GEMINI_API_KEY", "prefixed")
		t.Setenv("GEMINI_API_KEY", "legacy")

		cfg := &StructuredConfig{}
		require.NoError(t, parseEnv(cfg))
		assert.Equal(t, "prefixed", cfg.App.GeminiAPIKey)
	})
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidSampleRate(t *testing.T) {
	t.Setenv("CAPTURE_SAMPLE_RATE", "fast")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
