// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/MKhiriev/idea-voice/internal/config"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/models"
)

// contentGenerator is the subset of *genai.Models used by the transcriber.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiTranscriber struct {
	models  contentGenerator
	model   string
	timeout time.Duration

	logger *logger.Logger
}

// NewGeminiTranscriber constructs a [Transcriber] backed by the Gemini API.
// An empty API key is accepted: the returned transcriber then fails every
// call with [ErrMissingCredential] without touching the network.
func NewGeminiTranscriber(ctx context.Context, appCfg config.App, adapterCfg config.Adapter, logger *logger.Logger) (Transcriber, error) {
	t := &geminiTranscriber{
		model:   adapterCfg.Model,
		timeout: adapterCfg.RequestTimeout,
		logger:  logger,
	}

	apiKey := strings.TrimSpace(appCfg.GeminiAPIKey)
	if apiKey == "" {
		logger.Warn().Str("func", "NewGeminiTranscriber").Msg("no API key configured, processing is disabled")
		return t, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}
	t.models = client.Models

	return t, nil
}

func (g *geminiTranscriber) Transcribe(ctx context.Context, audio models.AudioPayload, lang models.Language) (models.ProcessingResult, error) {
	log := logger.FromContext(ctx)

	if g.models == nil {
		return models.ProcessingResult{}, ErrMissingCredential
	}
	if audio.IsEmpty() {
		return models.ProcessingResult{}, ErrEmptyAudio
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(audio.Data, audio.MIMEType),
		genai.NewPartFromText(buildPrompt(lang)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   resultSchema(),
	})
	if err != nil {
		log.Err(err).
			Str("func", "geminiTranscriber.Transcribe").
			Str("model", g.model).
			Int("audio_bytes", len(audio.Data)).
			Msg("generate content request failed")
		return models.ProcessingResult{}, processingError("gemini generate content", err)
	}
	if resp == nil {
		return models.ProcessingResult{}, fmt.Errorf("gemini generate content: %w: nil response", ErrMalformedResponse)
	}

	result, err := parseResult([]byte(resp.Text()))
	if err != nil {
		log.Err(err).Str("func", "geminiTranscriber.Transcribe").Msg("failed to parse model output")
		return models.ProcessingResult{}, err
	}

	return result, nil
}
