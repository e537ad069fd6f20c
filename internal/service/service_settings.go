// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/internal/store"
	"github.com/MKhiriev/idea-voice/models"
)

type settingsService struct {
	settings        store.SettingsRepository
	defaultLanguage models.Language
	logger          *logger.Logger
}

func NewSettingsService(settings store.SettingsRepository, defaultLanguage models.Language, log *logger.Logger) SettingsService {
	return &settingsService{
		settings:        settings,
		defaultLanguage: models.ParseLanguage(string(defaultLanguage)),
		logger:          log,
	}
}

func (s *settingsService) Language(ctx context.Context) models.Language {
	lang, err := s.settings.GetLanguage(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSettingNotFound) {
			s.logger.Warn().Err(err).Str("func", "settingsService.Language").Msg("falling back to default language")
		}
		return s.defaultLanguage
	}
	return models.ParseLanguage(string(lang))
}

func (s *settingsService) SetLanguage(ctx context.Context, lang models.Language) error {
	if err := s.settings.SetLanguage(ctx, models.ParseLanguage(string(lang))); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	return nil
}
