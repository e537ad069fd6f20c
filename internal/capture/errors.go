// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import "errors"

var (
	// ErrPermissionDenied is returned when the microphone cannot be opened,
	// either because access was refused or because no input device exists.
	ErrPermissionDenied = errors.New("microphone access denied or not available")

	// ErrAlreadyRecording is returned by Start while a session is active.
	ErrAlreadyRecording = errors.New("recording already in progress")

	// ErrNoAudio is returned by Stop when nothing was captured.
	ErrNoAudio = errors.New("no audio captured")
)
