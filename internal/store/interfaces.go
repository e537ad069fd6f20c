// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/idea-voice/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository is the durable id → note mapping on this device.
type NoteRepository interface {
	// Put inserts note or fully replaces the stored note with the same id.
	Put(ctx context.Context, note models.Note) error
	// GetAll returns every stored note in unspecified order.
	GetAll(ctx context.Context) ([]models.Note, error)
	// Get returns the note with id or ErrNoteNotFound.
	Get(ctx context.Context, id string) (models.Note, error)
	// Delete removes the note with id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
	// Clear removes every note.
	Clear(ctx context.Context) error
	// ImportAll puts every note in one transaction.
	ImportAll(ctx context.Context, notes []models.Note) error
}

// SettingsRepository persists user preferences.
type SettingsRepository interface {
	// GetLanguage returns the stored language or ErrSettingNotFound.
	GetLanguage(ctx context.Context) (models.Language, error)
	SetLanguage(ctx context.Context, lang models.Language) error
}
