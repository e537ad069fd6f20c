// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing AI credential is deliberately not checked here: it only disables
// the processing path and is reported per note.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Adapter.Backend {
	case BackendGemini:
	case BackendHTTP:
		if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
			return ErrInvalidAdapterConfigs
		}
	default:
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Capture.SampleRate <= 0 {
		return ErrInvalidCaptureConfigs
	}

	if cfg.App.Language != "en" && cfg.App.Language != "th" {
		return ErrInvalidAppConfigs
	}

	return nil
}
