// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/idea-voice/internal/capture"
	"github.com/MKhiriev/idea-voice/internal/codec"
	"github.com/MKhiriev/idea-voice/internal/service"
	"github.com/MKhiriev/idea-voice/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	recordTickInterval = 50 * time.Millisecond
	statusTTL          = 4 * time.Second
	exportFileMode     = 0o600
)

// clipboardWrite is replaced in tests; the real clipboard needs a display.
var clipboardWrite = clipboard.WriteAll

// waitForNotes delivers notesChangedMsg on the next note list change.
// It must be re-issued after every delivery.
func waitForNotes(ctx context.Context, list *service.NoteList) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-list.Changes():
			return notesChangedMsg{}
		}
	}
}

func (m mainModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.LifecycleService

	return func() tea.Msg {
		return notesLoadedMsg{err: svc.Load(ctx)}
	}
}

func (m mainModel) cmdStartRecording() tea.Cmd {
	ctx := m.ctx
	recorder := m.recorder

	return func() tea.Msg {
		session, err := recorder.Start(ctx)
		return recordStartedMsg{session: session, err: err}
	}
}

func tickRecord() tea.Cmd {
	return tea.Tick(recordTickInterval, func(time.Time) tea.Msg {
		return recordTickMsg{}
	})
}

func (m mainModel) cmdFinishRecording(session capture.Session) tea.Cmd {
	ctx := m.ctx
	svc := m.services.LifecycleService
	lang := m.lang

	return func() tea.Msg {
		rec, err := session.Stop()
		if err != nil {
			return noteSubmittedMsg{err: err}
		}
		note, err := svc.Submit(ctx, rec, lang)
		return noteSubmittedMsg{note: note, err: err}
	}
}

func (m mainModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.LifecycleService

	return func() tea.Msg {
		return noteDeletedMsg{id: id, err: svc.Delete(ctx, id)}
	}
}

func (m mainModel) cmdCopy(note models.Note) tea.Cmd {
	text := m.services.BackupService.ExportText(note, m.lang)

	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(text)}
	}
}

func (m mainModel) cmdSaveAudio(note models.Note) tea.Cmd {
	dir := m.exportDir

	return func() tea.Msg {
		path := filepath.Join(dir, codec.NoteFileName(note, audioExt(note.Audio.MIMEType)))
		if err := os.WriteFile(path, note.Audio.Data, exportFileMode); err != nil {
			return audioSavedMsg{err: fmt.Errorf("write audio: %w", err)}
		}
		return audioSavedMsg{path: path}
	}
}

func (m mainModel) cmdBackup(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.BackupService

	return func() tea.Msg {
		data, err := svc.Export(ctx)
		if err != nil {
			return backupDoneMsg{err: err}
		}
		if err = os.WriteFile(path, data, exportFileMode); err != nil {
			return backupDoneMsg{err: fmt.Errorf("write backup: %w", err)}
		}
		return backupDoneMsg{path: path}
	}
}

func (m mainModel) cmdRestore(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.BackupService

	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return restoreDoneMsg{err: fmt.Errorf("read backup: %w", err)}
		}
		report, err := svc.Import(ctx, data)
		return restoreDoneMsg{report: report, err: err}
	}
}

func (m mainModel) cmdClear() tea.Cmd {
	ctx := m.ctx
	svc := m.services.BackupService

	return func() tea.Msg {
		return clearDoneMsg{err: svc.Clear(ctx)}
	}
}

func (m mainModel) cmdSetLanguage(lang models.Language) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SettingsService

	return func() tea.Msg {
		return languageSavedMsg{lang: lang, err: svc.SetLanguage(ctx, lang)}
	}
}

func clearStatusLater(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
