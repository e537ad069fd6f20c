// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/idea-voice/internal/locale"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/internal/store"
	"github.com/MKhiriev/idea-voice/models"
)

// StaleProcessingWorker fails notes left in the processing state by an
// earlier run. It must run before any new recording is submitted: at that
// point no processing cycle is outstanding, so nothing can resolve them.
type StaleProcessingWorker struct {
	notes  store.NoteRepository
	lang   func(ctx context.Context) models.Language
	logger *logger.Logger
}

// NewStaleProcessingWorker returns a worker that writes the failure text in
// the language returned by lang.
func NewStaleProcessingWorker(notes store.NoteRepository, lang func(ctx context.Context) models.Language, log *logger.Logger) *StaleProcessingWorker {
	return &StaleProcessingWorker{notes: notes, lang: lang, logger: log}
}

func (w *StaleProcessingWorker) Run(ctx context.Context) error {
	notes, err := w.notes.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read notes: %w", err)
	}

	text := locale.For(w.lang(ctx)).Lifecycle
	failed := 0
	for _, n := range notes {
		if !n.IsProcessing() {
			continue
		}

		n.Title = text.FailedTitle
		n.Transcript = text.FailedTranscript
		n.State = models.StateFailed
		n.ErrorMessage = locale.ProcessingFailedError

		if err = w.notes.Put(ctx, n); err != nil {
			return fmt.Errorf("fail stale note %s: %w", n.ID, err)
		}
		failed++
	}

	if failed > 0 {
		w.logger.Info().
			Str("func", "StaleProcessingWorker.Run").
			Int("failed", failed).
			Msg("notes left processing by a previous run marked as failed")
	}
	return nil
}
