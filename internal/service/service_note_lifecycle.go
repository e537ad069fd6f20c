// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/idea-voice/internal/adapter"
	"github.com/MKhiriev/idea-voice/internal/locale"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/internal/store"
	"github.com/MKhiriev/idea-voice/internal/utils"
	"github.com/MKhiriev/idea-voice/internal/validators"
	"github.com/MKhiriev/idea-voice/models"
)

type noteLifecycleService struct {
	notes       store.NoteRepository
	transcriber adapter.Transcriber
	list        *NoteList
	ids         IDGenerator
	clock       Clock
	validator   validators.Validator
	logger      *logger.Logger

	// mu guards inFlight and tombstones and serializes the final write of a
	// cycle against Delete and Clear.
	mu         sync.Mutex
	inFlight   map[string]struct{}
	tombstones map[string]struct{}
	wg         sync.WaitGroup
}

// NewNoteLifecycleService returns the controller that owns the note list.
// The list starts empty; call Load to fill it from the store.
func NewNoteLifecycleService(notes store.NoteRepository, transcriber adapter.Transcriber, log *logger.Logger) NoteLifecycleService {
	return &noteLifecycleService{
		notes:       notes,
		transcriber: transcriber,
		list:        NewNoteList(),
		ids:         utils.NewUUIDGenerator(),
		clock:       utils.SystemClock{},
		validator:   validators.NewNoteValidator(),
		logger:      log,
		inFlight:    make(map[string]struct{}),
		tombstones:  make(map[string]struct{}),
	}
}

func (s *noteLifecycleService) Notes() *NoteList {
	return s.list
}

func (s *noteLifecycleService) Submit(ctx context.Context, rec models.Recording, lang models.Language) (models.Note, error) {
	if err := s.validator.Validate(ctx, rec, validators.FieldAudio, validators.FieldMIMEType); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidRecording, err)
	}

	lang = models.ParseLanguage(string(lang))
	placeholder := s.newPlaceholder(rec, lang)

	s.mu.Lock()
	if err := s.notes.Put(ctx, placeholder); err != nil {
		s.mu.Unlock()
		return models.Note{}, fmt.Errorf("store placeholder note: %w", err)
	}
	s.inFlight[placeholder.ID] = struct{}{}
	s.wg.Add(1)
	s.mu.Unlock()

	s.list.Upsert(placeholder)

	s.logger.Debug().
		Str("func", "noteLifecycleService.Submit").
		Str("id", placeholder.ID).
		Int("duration", placeholder.DurationSeconds).
		Msg("placeholder stored, processing started")

	go s.process(context.WithoutCancel(ctx), placeholder, lang)

	return placeholder, nil
}

func (s *noteLifecycleService) newPlaceholder(rec models.Recording, lang models.Language) models.Note {
	text := locale.For(lang).Lifecycle
	duration := rec.DurationSeconds
	if duration < 0 {
		duration = 0
	}

	return models.Note{
		ID:              s.ids.Generate(),
		CreatedAt:       s.clock.Now().UnixMilli(),
		Audio:           rec.Audio,
		DurationSeconds: duration,
		Title:           text.PlaceholderTitle,
		Transcript:      text.PlaceholderTranscript,
		KeyPoints:       []string{},
		Tags:            []string{},
		ActionItems:     []string{},
		State:           models.StateProcessing,
	}
}

// process runs one processing cycle. Errors never leave it: an adapter
// failure becomes a Failed note and a storage failure is logged.
func (s *noteLifecycleService) process(ctx context.Context, placeholder models.Note, lang models.Language) {
	defer s.wg.Done()

	log := s.logger.With().
		Str("func", "noteLifecycleService.process").
		Str("id", placeholder.ID).
		Logger()

	var final models.Note
	result, err := s.transcriber.Transcribe(ctx, placeholder.Audio, lang)
	if err != nil {
		log.Warn().Err(err).Msg("processing failed")
		final = failedNote(placeholder, lang)
	} else {
		final = placeholder.ApplyResult(result)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, placeholder.ID)
	if _, deleted := s.tombstones[placeholder.ID]; deleted {
		delete(s.tombstones, placeholder.ID)
		log.Debug().Msg("note deleted while processing, result discarded")
		return
	}

	if err = s.notes.Put(ctx, final); err != nil {
		log.Err(err).Str("state", final.State.String()).Msg("failed to store processed note")
	}
	s.list.Upsert(final)

	log.Debug().Str("state", final.State.String()).Msg("processing finished")
}

// failedNote moves n to StateFailed with the fixed failure text for lang.
// Lists keep their placeholder (empty) values.
func failedNote(n models.Note, lang models.Language) models.Note {
	text := locale.For(lang).Lifecycle
	n.Title = text.FailedTitle
	n.Transcript = text.FailedTranscript
	n.State = models.StateFailed
	n.ErrorMessage = locale.ProcessingFailedError
	return n
}

func (s *noteLifecycleService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, pending := s.inFlight[id]
	if pending {
		s.tombstones[id] = struct{}{}
	}

	if err := s.notes.Delete(ctx, id); err != nil {
		if pending {
			delete(s.tombstones, id)
		}
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	s.list.Remove(id)
	return nil
}

func (s *noteLifecycleService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.notes.Clear(ctx); err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}

	for id := range s.inFlight {
		s.tombstones[id] = struct{}{}
	}
	s.list.Replace(nil)
	return nil
}

// Load replaces the list with the stored notes. It holds mu so a cycle
// cannot commit between the read and the replace.
func (s *noteLifecycleService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.notes.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	s.list.Replace(notes)
	return nil
}

func (s *noteLifecycleService) Wait() {
	s.wg.Wait()
}
