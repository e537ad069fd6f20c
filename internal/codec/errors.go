// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrInvalidBackup is returned when the backup payload is not a JSON array.
	ErrInvalidBackup = errors.New("invalid backup file format")
)
