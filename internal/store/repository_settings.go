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

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *settingsRepository) GetLanguage(ctx context.Context) (models.Language, error) {
	log := logger.FromContext(ctx)

	query, args, err := getSettingQuery(settingLanguage)
	if err != nil {
		return "", fmt.Errorf("failed to build setting query: %w", err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.GetLanguage").Msg("failed to read language")
		return "", fmt.Errorf("failed to read language: %w", s.classifyError(err))
	}

	return models.ParseLanguage(value), nil
}

func (s *settingsRepository) SetLanguage(ctx context.Context, lang models.Language) error {
	log := logger.FromContext(ctx)

	query, args, err := putSettingQuery(settingLanguage, string(lang))
	if err != nil {
		return fmt.Errorf("failed to build setting upsert: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.SetLanguage").
			Str("language", string(lang)).
			Msg("failed to store language")
		return fmt.Errorf("failed to store language: %w", s.classifyError(err))
	}

	return nil
}
