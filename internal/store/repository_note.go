// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/models"
)

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (n *noteRepository) Put(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := putNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Put").Str("id", note.ID).Msg("failed to build upsert query")
		return fmt.Errorf("failed to build note upsert (id=%s): %w", note.ID, err)
	}

	if _, err = n.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.Put").
			Str("id", note.ID).
			Str("state", note.State.String()).
			Msg("failed to execute upsert for note")
		return fmt.Errorf("failed to save note (id=%s): %w", note.ID, n.classifyError(err))
	}

	return nil
}

func (n *noteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := getAllNotesQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build notes query: %w", err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetAll").Msg("failed to execute query for getting all notes")
		return nil, fmt.Errorf("failed to query all notes: %w", n.classifyError(err))
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.GetAll").Msg("failed to scan note row")
			return nil, fmt.Errorf("failed to scan note row: %w", scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating note rows: %w", n.classifyError(rowsErr))
	}

	return notes, nil
}

func (n *noteRepository) Get(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := getNoteQuery(id)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to build note query: %w", err)
	}

	note, err := scanNote(n.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Get").Str("id", id).Msg("failed to get note")
		return models.Note{}, fmt.Errorf("failed to get note (id=%s): %w", id, n.classifyError(err))
	}

	return note, nil
}

func (n *noteRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteNoteQuery(id)
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err = n.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "noteRepository.Delete").Str("id", id).Msg("failed to delete note")
		return fmt.Errorf("failed to delete note (id=%s): %w", id, n.classifyError(err))
	}

	return nil
}

func (n *noteRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := clearNotesQuery()
	if err != nil {
		return fmt.Errorf("failed to build clear query: %w", err)
	}

	if _, err = n.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "noteRepository.Clear").Msg("failed to clear notes")
		return fmt.Errorf("failed to clear notes: %w", n.classifyError(err))
	}

	return nil
}

func (n *noteRepository) ImportAll(ctx context.Context, notes []models.Note) error {
	log := logger.FromContext(ctx)

	tx, err := n.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ImportAll").Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin import transaction: %w", n.classifyError(err))
	}
	defer tx.Rollback()

	for _, note := range notes {
		query, args, err := putNoteQuery(note)
		if err != nil {
			return fmt.Errorf("failed to build note upsert (id=%s): %w", note.ID, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "noteRepository.ImportAll").
				Str("id", note.ID).
				Msg("failed to import note")
			return fmt.Errorf("failed to import note (id=%s): %w", note.ID, n.classifyError(err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "noteRepository.ImportAll").Msg("failed to commit import")
		return fmt.Errorf("failed to commit import: %w", n.classifyError(err))
	}

	log.Debug().Str("func", "noteRepository.ImportAll").Int("count", len(notes)).Msg("notes imported")
	return nil
}
