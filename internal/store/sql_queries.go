// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/idea-voice/models"
)

const (
	notesTable    = "notes"
	settingsTable = "settings"

	settingLanguage = "language"
)

var noteColumns = []string{
	"id",
	"created_at",
	"audio",
	"mime_type",
	"duration",
	"title",
	"summary",
	"transcript",
	"key_points",
	"tags",
	"action_items",
	"state",
	"error_message",
}

// upsertSuffix replaces every column except the key, so a reader observes
// either the previous or the new full record.
func upsertSuffix(key string, columns []string) string {
	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == key {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	return fmt.Sprintf("ON CONFLICT(%s) DO UPDATE SET %s", key, strings.Join(sets, ", "))
}

func putNoteQuery(note models.Note) (string, []any, error) {
	values, err := noteValues(note)
	if err != nil {
		return "", nil, err
	}

	return sq.Insert(notesTable).
		Columns(noteColumns...).
		Values(values...).
		Suffix(upsertSuffix("id", noteColumns)).
		ToSql()
}

func getAllNotesQuery() (string, []any, error) {
	return sq.Select(noteColumns...).From(notesTable).ToSql()
}

func getNoteQuery(id string) (string, []any, error) {
	return sq.Select(noteColumns...).From(notesTable).Where(sq.Eq{"id": id}).ToSql()
}

func deleteNoteQuery(id string) (string, []any, error) {
	return sq.Delete(notesTable).Where(sq.Eq{"id": id}).ToSql()
}

func clearNotesQuery() (string, []any, error) {
	return sq.Delete(notesTable).ToSql()
}

func getSettingQuery(key string) (string, []any, error) {
	return sq.Select("value").From(settingsTable).Where(sq.Eq{"key": key}).ToSql()
}

func putSettingQuery(key, value string) (string, []any, error) {
	return sq.Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix(upsertSuffix("key", []string{"key", "value"})).
		ToSql()
}

func noteValues(note models.Note) ([]any, error) {
	keyPoints, err := encodeList(note.KeyPoints)
	if err != nil {
		return nil, err
	}
	tags, err := encodeList(note.Tags)
	if err != nil {
		return nil, err
	}
	actionItems, err := encodeList(note.ActionItems)
	if err != nil {
		return nil, err
	}

	audio := note.Audio.Data
	if audio == nil {
		audio = []byte{}
	}

	return []any{
		note.ID,
		note.CreatedAt,
		audio,
		note.Audio.MIMEType,
		note.DurationSeconds,
		note.Title,
		note.Summary,
		note.Transcript,
		keyPoints,
		tags,
		actionItems,
		note.State.String(),
		note.ErrorMessage,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note                         models.Note
		keyPoints, tags, actionItems string
		state                        string
	)

	err := row.Scan(
		&note.ID,
		&note.CreatedAt,
		&note.Audio.Data,
		&note.Audio.MIMEType,
		&note.DurationSeconds,
		&note.Title,
		&note.Summary,
		&note.Transcript,
		&keyPoints,
		&tags,
		&actionItems,
		&state,
		&note.ErrorMessage,
	)
	if err != nil {
		return models.Note{}, err
	}

	if note.KeyPoints, err = decodeList(keyPoints); err != nil {
		return models.Note{}, fmt.Errorf("key_points: %w", err)
	}
	if note.Tags, err = decodeList(tags); err != nil {
		return models.Note{}, fmt.Errorf("tags: %w", err)
	}
	if note.ActionItems, err = decodeList(actionItems); err != nil {
		return models.Note{}, fmt.Errorf("action_items: %w", err)
	}
	if note.State, err = models.ParseProcessingState(state); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("error encoding list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	items := []string{}
	if raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("error decoding list: %w", err)
	}
	return items, nil
}
