// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/idea-voice/internal/capture"
	"github.com/MKhiriev/idea-voice/internal/codec"
	"github.com/MKhiriev/idea-voice/internal/locale"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/internal/service"
	"github.com/MKhiriev/idea-voice/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenList screen = iota
	screenRecord
	screenDetail
	screenSettings
)

type overlay int

const (
	overlayNone overlay = iota
	overlayAbout
	overlayAlert
	overlayConfirmDelete
	overlayConfirmClear
	overlayPath
)

type pathAction int

const (
	pathBackup pathAction = iota
	pathRestore
)

type mainModel struct {
	ctx       context.Context
	services  *service.ClientServices
	recorder  capture.Recorder
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	lang          models.Language
	width, height int
	exportDir     string

	screen  screen
	overlay overlay
	alert   string

	notes     []models.Note
	idx       int
	loading   bool
	filter    textinput.Model
	filtering bool
	spinner   spinner.Model

	session    capture.Session
	spectrum   []uint8
	elapsed    time.Duration
	submitting bool

	detailID string

	pathInput  textinput.Model
	pathAction pathAction
	busy       bool

	status    string
	statusErr bool
	statusSeq int
}

func newMainModel(ctx context.Context, services *service.ClientServices, recorder capture.Recorder, buildInfo models.AppBuildInfo, log *logger.Logger) mainModel {
	lang := services.SettingsService.Language(ctx)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = locale.For(lang).App.SearchPlaceholder
	filter.Width = 40

	path := textinput.New()
	path.Width = 48

	exportDir, err := os.Getwd()
	if err != nil {
		exportDir = "."
	}

	return mainModel{
		ctx:       ctx,
		services:  services,
		recorder:  recorder,
		buildInfo: buildInfo,
		logger:    log,
		lang:      lang,
		exportDir: exportDir,
		loading:   true,
		filter:    filter,
		spinner:   s,
		pathInput: path,
		notes:     services.LifecycleService.Notes().Snapshot(),
	}
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdLoadNotes(),
		waitForNotes(m.ctx, m.services.LifecycleService.Notes()),
		m.spinner.Tick,
	)
}

func (m mainModel) strings() locale.Strings {
	return locale.For(m.lang)
}

// visible returns the notes shown in the list after filtering.
func (m mainModel) visible() []models.Note {
	return filterNotes(m.notes, m.filter.Value())
}

func (m mainModel) current() (models.Note, bool) {
	items := m.visible()
	if len(items) == 0 || m.idx < 0 || m.idx >= len(items) {
		return models.Note{}, false
	}
	return items[m.idx], true
}

func (m mainModel) detailNote() (models.Note, bool) {
	return m.services.LifecycleService.Notes().Get(m.detailID)
}

func (m *mainModel) clampCursor() {
	n := len(m.visible())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *mainModel) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return clearStatusLater(m.statusSeq)
}

func (m *mainModel) showAlert(text string) {
	m.overlay = overlayAlert
	m.alert = text
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notesChangedMsg:
		m.notes = m.services.LifecycleService.Notes().Snapshot()
		m.clampCursor()
		if m.screen == screenDetail {
			if _, ok := m.detailNote(); !ok {
				m.screen = screenList
			}
		}
		return m, waitForNotes(m.ctx, m.services.LifecycleService.Notes())

	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "mainModel.Update").Msg("failed to load notes")
			m.showAlert(msg.err.Error())
		}
		return m, nil

	case recordStartedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, capture.ErrPermissionDenied) {
				m.showAlert(m.strings().Record.MicAccessError)
			} else {
				m.showAlert(msg.err.Error())
			}
			return m, nil
		}
		m.session = msg.session
		m.spectrum = nil
		m.elapsed = 0
		m.submitting = false
		m.screen = screenRecord
		return m, tickRecord()

	case recordTickMsg:
		if m.session == nil || m.screen != screenRecord || m.submitting {
			return m, nil
		}
		m.spectrum = m.session.Spectrum()
		m.elapsed = m.session.Elapsed()
		return m, tickRecord()

	case noteSubmittedMsg:
		m.session = nil
		m.submitting = false
		m.screen = screenList
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "mainModel.Update").Msg("failed to submit recording")
			m.showAlert(msg.err.Error())
			return m, nil
		}
		m.idx = 0
		return m, nil

	case noteDeletedMsg:
		if msg.err != nil {
			return m, m.setStatus(m.strings().Detail.DeleteFailed, true)
		}
		if m.detailID == msg.id {
			m.screen = screenList
			m.detailID = ""
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m, m.setStatus(msg.err.Error(), true)
		}
		return m, m.setStatus(m.strings().Detail.Copied, false)

	case audioSavedMsg:
		if msg.err != nil {
			return m, m.setStatus(msg.err.Error(), true)
		}
		return m, m.setStatus(m.strings().Detail.AudioSaved+" "+msg.path, false)

	case backupDoneMsg:
		m.busy = false
		st := m.strings().Settings.Status
		if msg.err != nil {
			return m, m.setStatus(st.BackupError, true)
		}
		return m, m.setStatus(st.BackupSuccess+" "+msg.path, false)

	case restoreDoneMsg:
		m.busy = false
		st := m.strings().Settings.Status
		if msg.err != nil {
			return m, m.setStatus(st.RestoreError, true)
		}
		text := st.RestoreDone
		if msg.report.Skipped > 0 {
			text = fmt.Sprintf("%s (%d %s)", text, msg.report.Skipped, st.SkippedItems)
		}
		return m, m.setStatus(text, false)

	case clearDoneMsg:
		m.busy = false
		st := m.strings().Settings.Status
		if msg.err != nil {
			return m, m.setStatus(st.ClearError, true)
		}
		return m, m.setStatus(st.ClearSuccess, false)

	case languageSavedMsg:
		if msg.err != nil {
			return m, m.setStatus(msg.err.Error(), true)
		}
		m.lang = msg.lang
		m.filter.Placeholder = m.strings().App.SearchPlaceholder
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch {
	case m.overlay == overlayPath:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case m.filtering:
		m.filter, cmd = m.filter.Update(msg)
	}
	return m, cmd
}

func (m mainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQ) {
		if m.session != nil {
			m.session.Cancel()
			m.session = nil
		}
		return m, tea.Quit
	}

	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}

	switch m.screen {
	case screenRecord:
		return m.updateRecord(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenSettings:
		return m.updateSettings(msg)
	default:
		return m.updateList(msg)
	}
}

func (m mainModel) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayAlert:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = overlayNone
			m.alert = ""
		}
	case overlayAbout:
		if key.Matches(msg, keys.esc, keys.about, keys.enter) {
			m.overlay = overlayNone
		}
	case overlayConfirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			m.overlay = overlayNone
			return m, m.cmdDelete(m.detailID)
		case key.Matches(msg, keys.no):
			m.overlay = overlayNone
		}
	case overlayConfirmClear:
		switch {
		case key.Matches(msg, keys.yes):
			m.overlay = overlayNone
			m.busy = true
			m.status = m.strings().Settings.Status.Loading
			return m, m.cmdClear()
		case key.Matches(msg, keys.no):
			m.overlay = overlayNone
		}
	case overlayPath:
		switch {
		case key.Matches(msg, keys.esc):
			m.overlay = overlayNone
			m.pathInput.Blur()
			return m, nil
		case key.Matches(msg, keys.enter):
			path := m.pathInput.Value()
			if path == "" {
				return m, nil
			}
			m.overlay = overlayNone
			m.pathInput.Blur()
			m.busy = true
			m.status = m.strings().Settings.Status.Loading
			if m.pathAction == pathRestore {
				return m, m.cmdRestore(path)
			}
			return m, m.cmdBackup(path)
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m mainModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		if key.Matches(msg, keys.esc, keys.enter) {
			m.filtering = false
			m.filter.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.idx = 0
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible())-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, keys.esc):
		m.filter.SetValue("")
		m.clampCursor()
	case key.Matches(msg, keys.record):
		return m, m.cmdStartRecording()
	case key.Matches(msg, keys.enter):
		if note, ok := m.current(); ok {
			m.detailID = note.ID
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.settings):
		m.screen = screenSettings
	case key.Matches(msg, keys.about):
		m.overlay = overlayAbout
	}
	return m, nil
}

func (m mainModel) updateRecord(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || m.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		m.submitting = true
		return m, m.cmdFinishRecording(m.session)
	case key.Matches(msg, keys.esc):
		m.session.Cancel()
		m.session = nil
		m.screen = screenList
	}
	return m, nil
}

func (m mainModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.detailNote()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.detailID = ""
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(note)
	case key.Matches(msg, keys.save):
		return m, m.cmdSaveAudio(note)
	case key.Matches(msg, keys.delete):
		m.overlay = overlayConfirmDelete
	}
	return m, nil
}

func (m mainModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
	case key.Matches(msg, keys.language):
		next := models.Thai
		if m.lang == models.Thai {
			next = models.English
		}
		return m, m.cmdSetLanguage(next)
	case key.Matches(msg, keys.backup):
		return m, m.openPathPrompt(pathBackup, filepath.Join(m.exportDir, codec.BackupFileName(time.Now())))
	case key.Matches(msg, keys.restore):
		return m, m.openPathPrompt(pathRestore, "")
	case key.Matches(msg, keys.clear):
		m.overlay = overlayConfirmClear
	}
	return m, nil
}

func (m *mainModel) openPathPrompt(action pathAction, initial string) tea.Cmd {
	m.pathAction = action
	m.pathInput.SetValue(initial)
	m.pathInput.CursorEnd()
	m.overlay = overlayPath
	return m.pathInput.Focus()
}

func (m mainModel) View() string {
	var page string
	switch m.screen {
	case screenRecord:
		page = m.viewRecord()
	case screenDetail:
		page = m.viewDetail()
	case screenSettings:
		page = m.viewSettings()
	default:
		page = m.viewList()
	}

	var box string
	switch m.overlay {
	case overlayAbout:
		box = renderBuildInfoWindow(m.buildInfo)
	case overlayAlert:
		box = errorOverlayModel{message: m.alert}.View()
	case overlayConfirmDelete:
		box = confirmModel{message: m.strings().Detail.DeleteConfirm}.View()
	case overlayConfirmClear:
		box = confirmModel{message: m.strings().Settings.ClearConfirm}.View()
	case overlayPath:
		box = overlayBoxStyle.Render(m.strings().Settings.PathPrompt + "\n\n" + m.pathInput.View() + "\n\n" + helpStyle.Render("enter ok  esc cancel"))
	default:
		return page
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m mainModel) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return "\n" + errorStyle.Render(m.status)
	}
	return "\n" + m.status
}
