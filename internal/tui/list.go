// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/idea-voice/models"
)

const listTitleWidth = 48

// filterNotes keeps the notes whose title, transcript or any tag contains
// query, ignoring case. An empty query keeps everything.
func filterNotes(notes []models.Note, query string) []models.Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return notes
	}

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if noteMatches(n, query) {
			out = append(out, n)
		}
	}
	return out
}

func noteMatches(n models.Note, query string) bool {
	if strings.Contains(strings.ToLower(n.Title), query) ||
		strings.Contains(strings.ToLower(n.Transcript), query) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func (m mainModel) viewList() string {
	s := m.strings()
	var b strings.Builder

	b.WriteString(helpStyle.Render(s.App.Slogan))
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	items := m.visible()
	switch {
	case m.loading && len(items) == 0:
		b.WriteString(m.spinner.View() + " " + s.App.Loading + "\n")
	case len(items) == 0:
		b.WriteString(s.NoteList.EmptyTitle + "\n")
		b.WriteString(helpStyle.Render(s.NoteList.EmptySubtitle) + "\n")
	default:
		for i, n := range items {
			b.WriteString(m.renderListItem(n, i == m.idx))
		}
	}

	b.WriteString(m.statusLine())

	return renderPage(s.App.Name, b.String(), s.NoteList.Hints)
}

func (m mainModel) renderListItem(n models.Note, selected bool) string {
	s := m.strings()
	cursor := "  "
	if selected {
		cursor = "> "
	}

	if n.IsProcessing() {
		title := m.spinner.View() + " " + s.NoteList.ProcessingTitle
		if selected {
			title = selectedStyle.Render(title)
		}
		return fmt.Sprintf("%s%s\n    %s\n", cursor, title, helpStyle.Render(s.NoteList.ProcessingSubtitle))
	}

	title := fitText(n.Title, listTitleWidth)
	if selected {
		title = selectedStyle.Render(title)
	}
	if n.State == models.StateFailed {
		title = errorStyle.Render("! ") + title
	}

	line := fmt.Sprintf("%s%s  %s  %s\n",
		cursor,
		title,
		badgeStyle.Render("["+durationBadge(n.DurationSeconds, m.lang)+"]"),
		helpStyle.Render(formatDate(n, m.lang)),
	)

	if len(n.Tags) > 0 {
		tags := make([]string, 0, len(n.Tags))
		for _, t := range n.Tags {
			tags = append(tags, "#"+t)
		}
		line += "    " + tagStyle.Render(strings.Join(tags, " ")) + "\n"
	}
	return line
}
