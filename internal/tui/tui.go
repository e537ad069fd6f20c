// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end: the note list, the
// recording overlay, note details, settings and the about window.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/idea-voice/internal/capture"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/internal/service"
	"github.com/MKhiriev/idea-voice/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	recorder  capture.Recorder
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, recorder capture.Recorder, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, recorder: recorder, buildInfo: buildInfo, logger: log}
}

// Run blocks until the user quits or ctx is cancelled. An active recording
// is discarded on exit.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainModel(ctx, t.services, t.recorder, t.buildInfo, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	if result, ok := finalModel.(mainModel); ok && result.session != nil {
		result.session.Cancel()
	}

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
