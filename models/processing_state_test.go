// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessingState_StringAndParse(t *testing.T) {
	for _, s := range []ProcessingState{StateProcessing, StateComplete, StateFailed} {
		got, err := ParseProcessingState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseProcessingState("queued")
	assert.Error(t, err)
}

func TestProcessingState_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from ProcessingState
		to   ProcessingState
		want bool
	}{
		{"processing to complete", StateProcessing, StateComplete, true},
		{"processing to failed", StateProcessing, StateFailed, true},
		{"processing to processing", StateProcessing, StateProcessing, false},
		{"complete to failed", StateComplete, StateFailed, false},
		{"failed to complete", StateFailed, StateComplete, false},
		{"complete to processing", StateComplete, StateProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestNote_ApplyResult(t *testing.T) {
	placeholder := Note{
		ID:              "id-1",
		CreatedAt:       1000,
		Audio:           AudioPayload{Data: []byte{1, 2, 3}, MIMEType: "audio/wav"},
		DurationSeconds: 5,
		Title:           "Processing...",
		State:           StateProcessing,
	}

	got := placeholder.ApplyResult(ProcessingResult{
		Title:      "Grocery List",
		Transcript: "milk eggs bread",
		Summary:    "Shopping reminder",
		KeyPoints:  []string{"milk", "eggs", "bread"},
		Tags:       []string{"errands"},
	})

	assert.Equal(t, StateComplete, got.State)
	assert.Equal(t, "Grocery List", got.Title)
	assert.Equal(t, 5, got.DurationSeconds)
	assert.Equal(t, placeholder.Audio, got.Audio)
	assert.NotNil(t, got.ActionItems)
	assert.Empty(t, got.ActionItems)
	assert.Equal(t, StateProcessing, placeholder.State, "receiver must not be mutated")
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Thai, ParseLanguage("th"))
	assert.Equal(t, English, ParseLanguage("en"))
	assert.Equal(t, English, ParseLanguage(""))
	assert.Equal(t, English, ParseLanguage("fr"))
}
