// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locale

import (
	"testing"

	"github.com/MKhiriev/idea-voice/models"
	"github.com/stretchr/testify/assert"
)

func TestFor_LifecycleStrings(t *testing.T) {
	en := For(models.English).Lifecycle
	th := For(models.Thai).Lifecycle

	assert.Equal(t, "Processing...", en.PlaceholderTitle)
	assert.Equal(t, "Processing Failed", en.FailedTitle)
	assert.Equal(t, "กำลังประมวลผล...", th.PlaceholderTitle)
	assert.Equal(t, "การประมวลผลล้มเหลว", th.FailedTitle)

	// placeholder and failure strings must never collide, otherwise a failed
	// note would be indistinguishable from one still processing
	for _, s := range []LifecycleStrings{en, th} {
		assert.NotEqual(t, s.PlaceholderTitle, s.FailedTitle)
		assert.NotEqual(t, s.PlaceholderTranscript, s.FailedTranscript)
	}
}

func TestFor_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, For(models.English), For(models.Language("de")))
}

func TestLayouts(t *testing.T) {
	assert.NotEqual(t, DateLayout(models.English), DateLayout(models.Thai))
	assert.NotEmpty(t, TimeLayout(models.Thai))
}
