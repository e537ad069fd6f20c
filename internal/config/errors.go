// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, unknown backend, missing endpoint or zero timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unsupported language).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCaptureConfigs indicates invalid capture settings
	// (for example, non-positive sample rate).
	ErrInvalidCaptureConfigs = errors.New("invalid capture configuration")
)
