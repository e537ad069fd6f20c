// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID             = errors.New("note id is required")
	ErrEmptyAudio          = errors.New("audio is required")
	ErrEmptyMIMEType       = errors.New("audio mime type is required")
	ErrNegativeDuration    = errors.New("duration cannot be negative")
	ErrInvalidState        = errors.New("invalid processing state")
	ErrMissingErrorMessage = errors.New("failed note must carry an error message")
	ErrUnexpectedError     = errors.New("only failed notes may carry an error message")
	ErrEmptyTitle          = errors.New("title is required")
)
