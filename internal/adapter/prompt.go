// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"google.golang.org/genai"

	"github.com/MKhiriev/idea-voice/models"
)

const (
	basePrompt = "Transcribe this audio precisely. Then, act as an expert editor: provide a catchy title, " +
		"a short summary, key bullet points, extract 1-3 relevant tags, and list any actionable tasks if present."

	thaiInstruction = " IMPORTANT: Provide all output fields (title, summary, keyPoints, tags, actionItems) in Thai language. " +
		"For the transcription, write exactly what was said (if mixed language, keep mixed)."

	englishInstruction = " Keep the tone helpful and concise."
)

// buildPrompt returns the editor instruction sent alongside the audio.
func buildPrompt(lang models.Language) string {
	if lang == models.Thai {
		return basePrompt + thaiInstruction
	}
	return basePrompt + englishInstruction
}

// resultSchema is the response schema requested from the model.
func resultSchema() *genai.Schema {
	stringList := func(desc string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: desc,
		}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":         {Type: genai.TypeString, Description: "A short, catchy title for the note."},
			"transcription": {Type: genai.TypeString, Description: "The verbatim transcription of the audio."},
			"summary":       {Type: genai.TypeString, Description: "A concise summary of the content."},
			"keyPoints":     stringList("Key points discussed."),
			"tags":          stringList("1-3 relevant tags."),
			"actionItems":   stringList("Actionable tasks, if any."),
		},
		Required: []string{"title", "transcription", "summary", "keyPoints", "tags"},
	}
}
