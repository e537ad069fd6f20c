// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the transcription service.
//
// The primary abstraction is [Transcriber], which decouples the lifecycle
// controller from the service protocol. Two implementations ship with the
// package: a Gemini client built on google.golang.org/genai
// ([NewGeminiTranscriber]) and a JSON-over-HTTP client for a self-hosted
// processing endpoint ([NewHTTPTranscriber]).
//
// Every failure returned by a Transcriber wraps [ErrProcessing], so callers
// can fold all service problems into a single outcome with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/idea-voice/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Transcriber turns recorded audio into a structured note.
type Transcriber interface {
	// Transcribe sends audio to the service once, asking for output in lang,
	// and returns the parsed result. Any failure (missing credential,
	// transport, non-2xx status, timeout, malformed output) is returned as an
	// error wrapping [ErrProcessing]. There is no retry.
	Transcribe(ctx context.Context, audio models.AudioPayload, lang models.Language) (models.ProcessingResult, error)
}
