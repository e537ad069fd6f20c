// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ProcessingState is the position of a note in its processing cycle.
type ProcessingState int

const (
	// StateProcessing marks a placeholder note whose result has not arrived.
	StateProcessing ProcessingState = iota
	// StateComplete marks a note holding the final transcription result.
	StateComplete
	// StateFailed marks a note whose processing ended with an error.
	StateFailed
)

// String returns the stable textual form used in storage and logs.
func (s ProcessingState) String() string {
	switch s {
	case StateProcessing:
		return "processing"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseProcessingState is the inverse of String.
func ParseProcessingState(s string) (ProcessingState, error) {
	switch s {
	case "processing":
		return StateProcessing, nil
	case "complete":
		return StateComplete, nil
	case "failed":
		return StateFailed, nil
	default:
		return 0, fmt.Errorf("unknown processing state %q", s)
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s ProcessingState) IsTerminal() bool {
	return s == StateComplete || s == StateFailed
}

// CanTransition reports whether a note may move from s to next.
// Only Processing -> Complete and Processing -> Failed are allowed.
func (s ProcessingState) CanTransition(next ProcessingState) bool {
	return s == StateProcessing && next.IsTerminal()
}
