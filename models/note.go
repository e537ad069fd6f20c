// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is the persisted record of one voice capture plus the annotations
// produced for it by the transcription service.
//
// ID, CreatedAt, Audio and DurationSeconds are fixed when the note is
// created. The text fields and the three lists are written twice at most:
// once with placeholder values and once with the final result of the
// processing cycle.
type Note struct {
	// ID is the opaque unique identifier of the note (UUIDv7 string).
	ID string `json:"id"`

	// CreatedAt is the creation timestamp in epoch milliseconds.
	CreatedAt int64 `json:"created_at"`

	// Audio holds the encoded recording and its container tag.
	Audio AudioPayload `json:"audio"`

	// DurationSeconds is the elapsed capture time in whole seconds.
	DurationSeconds int `json:"duration"`

	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Transcript string `json:"transcription"`

	KeyPoints   []string `json:"key_points"`
	Tags        []string `json:"tags"`
	ActionItems []string `json:"action_items"`

	// State governs whether the text fields hold placeholder or final values.
	State ProcessingState `json:"state"`

	// ErrorMessage is set only when State is StateFailed.
	ErrorMessage string `json:"error,omitempty"`
}

// AudioPayload is the raw encoded audio of a note together with its
// MIME/container tag (e.g. "audio/wav", "audio/webm;codecs=opus").
type AudioPayload struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mime_type"`
}

// IsEmpty reports whether the payload carries no audio bytes.
func (a AudioPayload) IsEmpty() bool {
	return len(a.Data) == 0
}

// Recording is the outcome of a finished capture: the encoded audio and the
// elapsed duration. It is what the lifecycle controller turns into a Note.
type Recording struct {
	Audio           AudioPayload
	DurationSeconds int
}

// ProcessingResult is the structured output of the transcription service.
// JSON names match the response schema requested from the service.
type ProcessingResult struct {
	Title       string   `json:"title"`
	Transcript  string   `json:"transcription"`
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	Tags        []string `json:"tags"`
	ActionItems []string `json:"actionItems"`
}

// IsProcessing reports whether the note is still awaiting its result.
func (n Note) IsProcessing() bool {
	return n.State == StateProcessing
}

// ApplyResult returns a copy of n with the result fields merged in and the
// state moved to StateComplete. Identity, audio and duration are untouched.
func (n Note) ApplyResult(r ProcessingResult) Note {
	n.Title = r.Title
	n.Transcript = r.Transcript
	n.Summary = r.Summary
	n.KeyPoints = nonNil(r.KeyPoints)
	n.Tags = nonNil(r.Tags)
	n.ActionItems = nonNil(r.ActionItems)
	n.State = StateComplete
	n.ErrorMessage = ""
	return n
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
