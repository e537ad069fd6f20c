// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-voice/internal/codec"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/internal/store"
	"github.com/MKhiriev/idea-voice/models"
)

type backupService struct {
	notes     store.NoteRepository
	lifecycle NoteLifecycleService
	logger    *logger.Logger
}

// NewBackupService returns a BackupService that refreshes lifecycle's note
// list after every change to the store.
func NewBackupService(notes store.NoteRepository, lifecycle NoteLifecycleService, log *logger.Logger) BackupService {
	return &backupService{notes: notes, lifecycle: lifecycle, logger: log}
}

func (b *backupService) Export(ctx context.Context) ([]byte, error) {
	notes, err := b.notes.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read notes for export: %w", err)
	}

	list := NewNoteList()
	list.Replace(notes)

	data, err := codec.EncodeBackup(list.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

func (b *backupService) Import(ctx context.Context, data []byte) (models.ImportReport, error) {
	notes, skipped, err := codec.DecodeBackup(data)
	if err != nil {
		return models.ImportReport{}, err
	}

	if len(notes) > 0 {
		if err = b.notes.ImportAll(ctx, notes); err != nil {
			return models.ImportReport{Skipped: skipped}, fmt.Errorf("write imported notes: %w", err)
		}
	}

	if err = b.lifecycle.Load(ctx); err != nil {
		b.logger.Err(err).Str("func", "backupService.Import").Msg("failed to refresh notes after import")
	}

	b.logger.Info().
		Str("func", "backupService.Import").
		Int("imported", len(notes)).
		Int("skipped", skipped).
		Msg("backup restored")

	return models.ImportReport{Imported: len(notes), Skipped: skipped}, nil
}

func (b *backupService) Clear(ctx context.Context) error {
	return b.lifecycle.Clear(ctx)
}

func (b *backupService) ExportText(note models.Note, lang models.Language) string {
	return codec.FormatNote(note, lang)
}
