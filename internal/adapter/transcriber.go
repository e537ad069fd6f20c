// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-voice/internal/config"
	"github.com/MKhiriev/idea-voice/internal/logger"
)

// NewTranscriber builds the backend selected by cfg.Adapter.Backend.
func NewTranscriber(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (Transcriber, error) {
	switch cfg.Adapter.Backend {
	case config.BackendGemini, "":
		return NewGeminiTranscriber(ctx, cfg.App, cfg.Adapter, logger)
	case config.BackendHTTP:
		return NewHTTPTranscriber(cfg.App, cfg.Adapter, logger)
	default:
		return nil, fmt.Errorf("unknown transcription backend %q", cfg.Adapter.Backend)
	}
}
