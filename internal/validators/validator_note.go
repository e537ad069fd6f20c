// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/idea-voice/models"
)

const (
	FieldID       = "id"
	FieldAudio    = "audio"
	FieldMIMEType = "mime_type"
	FieldDuration = "duration"
	FieldState    = "state"
	FieldTitle    = "title"
)

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.Recording:
		return v.validateRecording(ctx, value, fields...)
	case *models.Recording:
		return v.validateRecording(ctx, *value, fields...)

	case models.ProcessingResult:
		return v.validateResult(ctx, value, fields...)
	case *models.ProcessingResult:
		return v.validateResult(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldAudio, FieldMIMEType, FieldDuration, FieldState}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(note.ID) == "" {
				return ErrEmptyID
			}
		case FieldAudio:
			if note.Audio.IsEmpty() {
				return ErrEmptyAudio
			}
		case FieldMIMEType:
			if strings.TrimSpace(note.Audio.MIMEType) == "" {
				return ErrEmptyMIMEType
			}
		case FieldDuration:
			if note.DurationSeconds < 0 {
				return ErrNegativeDuration
			}
		case FieldState:
			if err := validateState(note); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateState checks that the error message agrees with the state.
func validateState(note models.Note) error {
	switch note.State {
	case models.StateFailed:
		if note.ErrorMessage == "" {
			return ErrMissingErrorMessage
		}
	case models.StateProcessing, models.StateComplete:
		if note.ErrorMessage != "" {
			return ErrUnexpectedError
		}
	default:
		return ErrInvalidState
	}
	return nil
}

func (v *NoteValidator) validateRecording(_ context.Context, rec models.Recording, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAudio, FieldMIMEType, FieldDuration}
	}

	for _, f := range fields {
		switch f {
		case FieldAudio:
			if rec.Audio.IsEmpty() {
				return ErrEmptyAudio
			}
		case FieldMIMEType:
			if strings.TrimSpace(rec.Audio.MIMEType) == "" {
				return ErrEmptyMIMEType
			}
		case FieldDuration:
			if rec.DurationSeconds < 0 {
				return ErrNegativeDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateResult(_ context.Context, result models.ProcessingResult, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(result.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
