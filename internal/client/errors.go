// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUnknownCommand is returned for an unrecognized headless command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a command lacks its file argument.
	ErrMissingArgument = errors.New("missing command argument")
)
