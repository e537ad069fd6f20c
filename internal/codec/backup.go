// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/idea-voice/internal/validators"
	"github.com/MKhiriev/idea-voice/models"
)

var recordValidator = validators.NewNoteValidator()

// EncodeBackup serializes notes as an indented JSON array of backup records.
// Audio is embedded as standard base64.
func EncodeBackup(notes []models.Note) ([]byte, error) {
	records := make([]models.BackupRecord, 0, len(notes))
	for _, n := range notes {
		records = append(records, toRecord(n))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding backup: %w", err)
	}
	return data, nil
}

// DecodeBackup parses a backup payload. The top level must be a JSON array,
// otherwise ErrInvalidBackup is returned. Items missing id, audioBase64 or
// mimeType, items with undecodable audio and items that are not objects of
// the expected shape are skipped and counted.
//
// Returned notes are never in the processing state: a record with an error
// becomes StateFailed, every other record StateComplete.
func DecodeBackup(data []byte) ([]models.Note, int, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, 0, ErrInvalidBackup
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}

	notes := make([]models.Note, 0, len(items))
	skipped := 0
	for _, item := range items {
		note, ok := fromItem(item)
		if !ok {
			skipped++
			continue
		}
		notes = append(notes, note)
	}

	return notes, skipped, nil
}

// BackupFileName is the default backup file name for the given day.
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("ideavoice_backup_%s.json", now.UTC().Format(time.DateOnly))
}

func toRecord(n models.Note) models.BackupRecord {
	return models.BackupRecord{
		ID:            n.ID,
		CreatedAt:     n.CreatedAt,
		Duration:      n.DurationSeconds,
		Title:         n.Title,
		Transcription: n.Transcript,
		Summary:       n.Summary,
		KeyPoints:     orEmpty(n.KeyPoints),
		Tags:          orEmpty(n.Tags),
		ActionItems:   orEmpty(n.ActionItems),
		AudioBase64:   base64.StdEncoding.EncodeToString(n.Audio.Data),
		MIMEType:      n.Audio.MIMEType,
		Error:         n.ErrorMessage,
	}
}

func fromItem(item json.RawMessage) (models.Note, bool) {
	var r models.BackupRecord
	if err := json.Unmarshal(item, &r); err != nil {
		return models.Note{}, false
	}

	audio, err := base64.StdEncoding.DecodeString(r.AudioBase64)
	if err != nil {
		return models.Note{}, false
	}

	duration := r.Duration
	if duration < 0 {
		duration = 0
	}

	note := models.Note{
		ID:              r.ID,
		CreatedAt:       r.CreatedAt,
		Audio:           models.AudioPayload{Data: audio, MIMEType: r.MIMEType},
		DurationSeconds: duration,
		Title:           r.Title,
		Summary:         r.Summary,
		Transcript:      r.Transcription,
		KeyPoints:       orEmpty(r.KeyPoints),
		Tags:            orEmpty(r.Tags),
		ActionItems:     orEmpty(r.ActionItems),
		State:           models.StateComplete,
	}
	if r.Error != "" {
		note.State = models.StateFailed
		note.ErrorMessage = r.Error
	}

	if err = recordValidator.Validate(context.Background(), note); err != nil {
		return models.Note{}, false
	}

	return note, true
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
