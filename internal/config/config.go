// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// idea-voice client. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the AI credential, the default
	// language and the log destination.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local note database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds configuration for the transcription service adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Capture holds microphone capture settings.
	Capture Capture `envPrefix:"CAPTURE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// GeminiAPIKey is the credential of the transcription service. An empty
	// value is allowed: recording and storage keep working and every
	// processing attempt fails fast with a missing-credential error.
	// Env: APP_GEMINI_API_KEY (falls back to GEMINI_API_KEY)
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// Language is the default UI and transcription language ("en" or "th")
	// used until the user picks one in the settings screen.
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`

	// LogFile is the path of the rotating client log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "ideavoice.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the transcription service adapter.
type Adapter struct {
	// Backend selects the adapter implementation: "gemini" or "http".
	// Env: ADAPTER_BACKEND
	Backend string `env:"BACKEND"`

	// Model is the generative model name used by the gemini backend.
	// Env: ADAPTER_MODEL
	Model string `env:"MODEL"`

	// HTTPAddress is the base URL of the self-hosted processing endpoint used
	// by the http backend.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single transcription request (e.g. "90s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Capture holds microphone capture settings.
type Capture struct {
	// SampleRate is the capture sample rate in Hz.
	// Env: CAPTURE_SAMPLE_RATE
	SampleRate int `env:"SAMPLE_RATE"`
}

// Adapter backends.
const (
	BackendGemini = "gemini"
	BackendHTTP   = "http"
)

// defaultConfig returns the values used for every field no source sets.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Language: "en",
			LogFile:  "ideavoice.log",
		},
		Storage: Storage{
			DB: DB{DSN: "ideavoice.db"},
		},
		Adapter: Adapter{
			Backend:        BackendGemini,
			Model:          "gemini-2.5-flash",
			RequestTimeout: 2 * time.Minute,
		},
		Capture: Capture{
			SampleRate: 16000,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
