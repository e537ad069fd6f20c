// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/idea-voice/models"
)

// NoteLifecycleService owns the note collection and drives every note from a
// finished recording to its final processed state.
type NoteLifecycleService interface {
	// Submit creates a placeholder note for rec, persists it, publishes it to
	// the note list and starts its processing cycle in the background. It
	// returns the placeholder as soon as it is stored. A storage failure is
	// returned and nothing is published or processed.
	Submit(ctx context.Context, rec models.Recording, lang models.Language) (models.Note, error)

	// Delete removes the note from the store and the note list. If the note
	// is still being processed, its late result is discarded.
	Delete(ctx context.Context, id string) error

	// Clear removes every note. Outstanding processing results are discarded.
	Clear(ctx context.Context) error

	// Load refreshes the note list from the store.
	Load(ctx context.Context) error

	// Notes returns the collection the presentation layer renders.
	Notes() *NoteList

	// Wait blocks until every outstanding processing cycle has finished.
	Wait()
}

// BackupService converts the whole note collection to and from the backup
// file format and renders single notes as plain text.
type BackupService interface {
	// Export returns the backup JSON of every stored note, newest first.
	Export(ctx context.Context) ([]byte, error)

	// Import restores notes from backup JSON, skipping invalid items. Notes
	// with an existing id are replaced. Returns codec.ErrInvalidBackup
	// (wrapped) when the payload is not a backup array.
	Import(ctx context.Context, data []byte) (models.ImportReport, error)

	// Clear removes every stored note.
	Clear(ctx context.Context) error

	// ExportText renders note as plain text labelled in lang.
	ExportText(note models.Note, lang models.Language) string
}

// SettingsService reads and writes user preferences.
type SettingsService interface {
	// Language returns the stored language, or the configured default when
	// none was stored or the store cannot be read.
	Language(ctx context.Context) models.Language

	// SetLanguage persists lang.
	SetLanguage(ctx context.Context, lang models.Language) error
}

// IDGenerator issues unique note identifiers.
type IDGenerator interface {
	Generate() string
}

// Clock supplies creation timestamps.
type Clock interface {
	Now() time.Time
}
