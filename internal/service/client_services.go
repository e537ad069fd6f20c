// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/idea-voice/internal/adapter"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/internal/store"
	"github.com/MKhiriev/idea-voice/models"
)

type ClientServices struct {
	LifecycleService NoteLifecycleService
	BackupService    BackupService
	SettingsService  SettingsService
}

func NewClientServices(storages *store.ClientStorages, transcriber adapter.Transcriber, defaultLanguage models.Language, log *logger.Logger) *ClientServices {
	lifecycle := NewNoteLifecycleService(storages.NoteRepository, transcriber, log)

	return &ClientServices{
		LifecycleService: lifecycle,
		BackupService:    NewBackupService(storages.NoteRepository, lifecycle, log),
		SettingsService:  NewSettingsService(storages.SettingsRepository, defaultLanguage, log),
	}
}
