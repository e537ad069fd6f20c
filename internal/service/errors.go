// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidRecording is returned by Submit for a recording without
	// audio bytes or a mime type.
	ErrInvalidRecording = errors.New("invalid recording")
)
