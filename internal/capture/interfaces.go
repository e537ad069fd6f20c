// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package capture records microphone audio and exposes a live frequency
// snapshot of the signal while a recording is in progress.
package capture

import (
	"context"
	"time"

	"github.com/MKhiriev/idea-voice/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/capture_mock.go -package=mock

// Recorder opens capture sessions on the default input device.
type Recorder interface {
	// Start opens the input device and begins buffering samples. It returns
	// ErrPermissionDenied when the device cannot be opened and
	// ErrAlreadyRecording when another session is active.
	Start(ctx context.Context) (Session, error)
}

// Session is one in-progress recording.
type Session interface {
	// Stop ends capture and returns the encoded audio and its duration.
	Stop() (models.Recording, error)
	// Cancel ends capture and discards everything recorded.
	Cancel()
	// Spectrum returns the latest frequency-bin snapshot.
	Spectrum() []uint8
	// Elapsed returns the recorded time so far.
	Elapsed() time.Duration
}

// SampleSource produces mono 16-bit PCM frames.
type SampleSource interface {
	Open(sampleRate int) (Stream, error)
}

// Stream is an opened input device.
type Stream interface {
	// Read blocks until the next frame is available.
	Read() ([]int16, error)
	Close() error
}
