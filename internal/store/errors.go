// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned by [NoteRepository.Get] when no note with the
	// requested id exists.
	ErrNoteNotFound = errors.New("note not found")

	// ErrSettingNotFound is returned when a preference has never been stored.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrStorageUnavailable is returned when the database cannot be opened,
	// is locked, read-only, corrupt or has been closed.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrQuotaExceeded is returned when a write fails because the disk or the
	// database has no room left.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)
