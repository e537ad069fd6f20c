// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/idea-voice/models"
)

var languageNames = map[models.Language]string{
	models.English: "English",
	models.Thai:    "ไทย",
}

func (m mainModel) viewSettings() string {
	s := m.strings().Settings
	var b strings.Builder

	b.WriteString(titleStyle.Render(s.Language))
	b.WriteString("\n")
	for _, lang := range models.Languages() {
		mark := "( ) "
		name := languageNames[lang]
		if lang == m.lang {
			mark = "(•) "
			name = selectedStyle.Render(name)
		}
		b.WriteString(mark + name + "\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(s.DataManagement))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(s.BackupDesc))
	b.WriteString("\n\n")
	b.WriteString("b  " + s.BackupBtn + "\n")
	b.WriteString("r  " + s.RestoreBtn + "\n")
	b.WriteString("x  " + errorStyle.Render(s.ClearBtn) + "\n")

	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " " + s.Status.Loading)
	} else {
		b.WriteString(m.statusLine())
	}

	return renderPage(s.Title, b.String(), s.Hints)
}
