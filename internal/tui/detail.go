// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/idea-voice/models"
)

func (m mainModel) viewDetail() string {
	s := m.strings().Detail
	note, ok := m.detailNote()
	if !ok {
		return renderPage(m.strings().App.Name, "", s.Hints)
	}

	var b strings.Builder
	b.WriteString(helpStyle.Render(s.CapturedOn + " " + formatDate(note, m.lang) + " " + s.At + " " + formatClock(note, m.lang)))
	b.WriteString("  ")
	b.WriteString(badgeStyle.Render("[" + durationBadge(note.DurationSeconds, m.lang) + "]"))
	b.WriteString("\n")

	if note.IsProcessing() {
		b.WriteString("\n" + m.spinner.View() + " " + m.strings().NoteList.ProcessingSubtitle + "\n")
	}
	if note.State == models.StateFailed {
		b.WriteString("\n" + errorStyle.Render(note.Transcript) + "\n")
	}

	section := func(label, body string) {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	section(s.Summary, orDash(note.Summary))
	section(s.KeyPoints, bulletList(note.KeyPoints, "• ", s.NoKeyPoints))
	section(s.ActionItems, bulletList(note.ActionItems, "[ ] ", s.NoActionItems))
	if note.State == models.StateComplete {
		section(s.Transcript, note.Transcript)
	}
	if len(note.Tags) > 0 {
		tags := make([]string, 0, len(note.Tags))
		for _, t := range note.Tags {
			tags = append(tags, "#"+t)
		}
		section(s.Tags, tagStyle.Render(strings.Join(tags, " ")))
	}

	b.WriteString(m.statusLine())

	return renderPage(note.Title, b.String(), s.Hints)
}

func bulletList(items []string, marker, empty string) string {
	if len(items) == 0 {
		return helpStyle.Render(empty)
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, marker+it)
	}
	return strings.Join(lines, "\n")
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
