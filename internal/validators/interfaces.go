// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks notes, recordings and transcription results
// before they enter the store.
//
// Every rule is addressed by a field name, so a caller can run the full set
// or only the fields it owns:
//
//	v := validators.NewNoteValidator()
//	err := v.Validate(ctx, rec, validators.FieldAudio, validators.FieldMIMEType)
//
// Rule violations are returned as the sentinel errors in errors.go.
package validators

import "context"

// Validator checks a value against its rules. With no field names every
// rule for the value's type is applied.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
