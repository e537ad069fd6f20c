// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/models"
)

type recorder struct {
	source     SampleSource
	sampleRate int
	logger     *logger.Logger

	mu     sync.Mutex
	active *session
}

// NewRecorder returns a [Recorder] reading from source at sampleRate Hz.
func NewRecorder(source SampleSource, sampleRate int, logger *logger.Logger) Recorder {
	return &recorder{
		source:     source,
		sampleRate: sampleRate,
		logger:     logger,
	}
}

func (r *recorder) Start(ctx context.Context) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active != nil {
		return nil, ErrAlreadyRecording
	}

	stream, err := r.source.Open(r.sampleRate)
	if err != nil {
		r.logger.Err(err).Str("func", "recorder.Start").Msg("failed to open input stream")
		if !errors.Is(err, ErrPermissionDenied) {
			err = fmt.Errorf("%w: %w", ErrPermissionDenied, err)
		}
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &session{
		owner:    r,
		stream:   stream,
		rate:     r.sampleRate,
		analyser: newAnalyser(),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	r.active = s

	go s.run(ctx)

	r.logger.Debug().Str("func", "recorder.Start").Int("sample_rate", r.sampleRate).Msg("recording started")
	return s, nil
}

func (r *recorder) release(s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active == s {
		r.active = nil
	}
}

type session struct {
	owner    *recorder
	stream   Stream
	rate     int
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	samples  []int16
	analyser *analyser
	readErr  error
}

func (s *session) run(ctx context.Context) {
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frame, err := s.stream.Read()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			s.mu.Lock()
			s.readErr = err
			s.mu.Unlock()
			return
		}

		s.mu.Lock()
		s.samples = append(s.samples, frame...)
		s.mu.Unlock()
	}
}

// finish stops the read loop and closes the device exactly once. The
// device is closed only after the loop exits, so Read and Close never race.
func (s *session) finish() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.done
		if closeErr := s.stream.Close(); closeErr != nil {
			s.owner.logger.Err(closeErr).Str("func", "session.finish").Msg("failed to close input stream")
		}
		s.owner.release(s)
	})
}

func (s *session) Stop() (models.Recording, error) {
	s.finish()

	s.mu.Lock()
	samples := s.samples
	readErr := s.readErr
	s.mu.Unlock()

	if len(samples) == 0 {
		if readErr != nil {
			return models.Recording{}, fmt.Errorf("%w: %w", ErrNoAudio, readErr)
		}
		return models.Recording{}, ErrNoAudio
	}
	if readErr != nil {
		s.owner.logger.Warn().
			Err(readErr).
			Str("func", "session.Stop").
			Int("samples", len(samples)).
			Msg("input stream failed mid-recording, keeping audio captured so far")
	}

	data, err := encodeWAV(samples, s.rate)
	if err != nil {
		return models.Recording{}, fmt.Errorf("error encoding recording: %w", err)
	}

	return models.Recording{
		Audio: models.AudioPayload{
			Data:     data,
			MIMEType: WAVMIMEType,
		},
		DurationSeconds: len(samples) / s.rate,
	}, nil
}

func (s *session) Cancel() {
	s.finish()

	s.mu.Lock()
	s.samples = nil
	s.mu.Unlock()
}

func (s *session) Spectrum() []uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.samples)
	if n == 0 {
		return make([]uint8, BinCount)
	}
	start := n - FFTSize
	if start < 0 {
		start = 0
	}
	return s.analyser.snapshot(s.samples[start:])
}

func (s *session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(len(s.samples)) * time.Second / time.Duration(s.rate)
}
