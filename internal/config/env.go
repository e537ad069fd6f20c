// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// legacyAPIKeyEnv is the unprefixed credential variable honoured when
// APP_GEMINI_API_KEY is not set.
const legacyAPIKeyEnv = "GEMINI_API_KEY"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.App.GeminiAPIKey == "" {
		cfg.App.GeminiAPIKey = os.Getenv(legacyAPIKeyEnv)
	}

	return nil
}
