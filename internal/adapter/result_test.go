// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/idea-voice/internal/validators"
	"github.com/MKhiriev/idea-voice/models"
)

func TestParseResult(t *testing.T) {
	t.Run("fenced json", func(t *testing.T) {
		got, err := parseResult([]byte("```json\n{\"title\":\"T\",\"transcription\":\"X\",\"summary\":\"S\"}\n```"))
		require.NoError(t, err)
		assert.Equal(t, "T", got.Title)
		assert.Equal(t, []string{}, got.KeyPoints)
		assert.Equal(t, []string{}, got.Tags)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := parseResult([]byte(`{"transcription":"X"}`))
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.ErrorIs(t, err, validators.ErrEmptyTitle)
	})

	t.Run("wrong types", func(t *testing.T) {
		_, err := parseResult([]byte(`{"title":"T","tags":"one"}`))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("blank", func(t *testing.T) {
		_, err := parseResult([]byte("  \n"))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestBuildPrompt(t *testing.T) {
	en := buildPrompt(models.English)
	th := buildPrompt(models.Thai)

	assert.True(t, strings.HasPrefix(en, "Transcribe this audio precisely."))
	assert.True(t, strings.HasSuffix(en, "Keep the tone helpful and concise."))
	assert.Contains(t, th, "in Thai language")
	assert.NotContains(t, th, "Keep the tone helpful")
	assert.Equal(t, en, buildPrompt(models.Language("de")))
}

func TestResultSchema(t *testing.T) {
	s := resultSchema()
	require.NotNil(t, s)
	assert.Len(t, s.Properties, 6)
	assert.NotContains(t, s.Required, "actionItems")
}
