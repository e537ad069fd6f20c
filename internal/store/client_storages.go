// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-voice/internal/config"
	"github.com/MKhiriev/idea-voice/internal/logger"
)

// ClientStorages groups all storage repositories into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// NoteRepository is the SQLite-backed repository for voice notes.
	NoteRepository NoteRepository

	// SettingsRepository holds user preferences such as the language.
	SettingsRepository SettingsRepository

	db *DB
}

// NewClientStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error wrapping [ErrStorageUnavailable] if the database cannot be
// opened, or the migration error.
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		NoteRepository:     NewNoteRepository(db, logger),
		SettingsRepository: NewSettingsRepository(db, logger),
		db:                 db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
