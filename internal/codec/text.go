// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/idea-voice/internal/locale"
	"github.com/MKhiriev/idea-voice/models"
)

var whitespace = regexp.MustCompile(`\s+`)

// FormatNote renders note as plain text with sections in fixed order:
// title, date, summary, key points, action items and transcript. Section
// labels follow lang.
func FormatNote(note models.Note, lang models.Language) string {
	s := locale.For(lang).Detail
	date := time.UnixMilli(note.CreatedAt).Format(locale.DateLayout(lang))

	var b strings.Builder
	b.WriteString(s.Title + ": " + note.Title + "\n")
	b.WriteString(s.Date + ": " + date + "\n\n")

	b.WriteString(s.Summary + ":\n")
	b.WriteString(note.Summary + "\n\n")

	b.WriteString(s.KeyPoints + ":\n")
	for _, p := range note.KeyPoints {
		b.WriteString("- " + p + "\n")
	}
	b.WriteString("\n")

	b.WriteString(s.ActionItems + ":\n")
	for _, item := range note.ActionItems {
		b.WriteString("[ ] " + item + "\n")
	}
	b.WriteString("\n")

	b.WriteString(s.Transcript + ":\n")
	b.WriteString(note.Transcript)

	return strings.TrimSpace(b.String())
}

// NoteFileName is the default file name of a shared note: its title with
// whitespace runs replaced by underscores.
func NoteFileName(note models.Note, ext string) string {
	name := whitespace.ReplaceAllString(strings.TrimSpace(note.Title), "_")
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = note.ID
	}
	return name + ext
}
