// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/idea-voice/internal/capture"
	"github.com/MKhiriev/idea-voice/models"
)

type notesChangedMsg struct{}

type notesLoadedMsg struct {
	err error
}

type recordStartedMsg struct {
	session capture.Session
	err     error
}

type recordTickMsg struct{}

type noteSubmittedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type copiedMsg struct {
	err error
}

type audioSavedMsg struct {
	path string
	err  error
}

type backupDoneMsg struct {
	path string
	err  error
}

type restoreDoneMsg struct {
	report models.ImportReport
	err    error
}

type clearDoneMsg struct {
	err error
}

type languageSavedMsg struct {
	lang models.Language
	err  error
}

// clearStatusMsg expires the status set with the same seq.
type clearStatusMsg struct {
	seq int
}
