// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side business logic of idea-voice:
// the note lifecycle controller that turns recordings into processed notes,
// backup import/export and user settings.
//
// All persistence goes through the store repositories and all AI calls go
// through adapter.Transcriber, so every service can be tested with the mocks
// in internal/mock.
package service
