// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/idea-voice/internal/config"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/internal/utils"
	"github.com/MKhiriev/idea-voice/models"
)

const processPath = "/api/notes/process"

// processRequest is the body posted to the self-hosted endpoint.
type processRequest struct {
	AudioBase64 string `json:"audioBase64"`
	MIMEType    string `json:"mimeType"`
	Language    string `json:"language"`
	Prompt      string `json:"prompt"`
}

type httpTranscriber struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewHTTPTranscriber constructs a [Transcriber] that posts audio to a
// self-hosted processing endpoint which replies with the result document.
// The configured API key, if any, is sent as a bearer token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPTranscriber(appCfg config.App, adapterCfg config.Adapter, logger *logger.Logger) (Transcriber, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpTranscriber{
		client: client,
		apiKey: strings.TrimSpace(appCfg.GeminiAPIKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpTranscriber) Transcribe(ctx context.Context, audio models.AudioPayload, lang models.Language) (models.ProcessingResult, error) {
	log := logger.FromContext(ctx)

	if audio.IsEmpty() {
		return models.ProcessingResult{}, ErrEmptyAudio
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(processRequest{
			AudioBase64: base64.StdEncoding.EncodeToString(audio.Data),
			MIMEType:    audio.MIMEType,
			Language:    string(lang),
			Prompt:      buildPrompt(lang),
		})
	if h.apiKey != "" {
		req.SetAuthToken(h.apiKey)
	}

	resp, err := req.Post(processPath)
	if err != nil {
		log.Err(err).Str("func", "httpTranscriber.Transcribe").Msg("process request failed")
		return models.ProcessingResult{}, processingError("process request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "httpTranscriber.Transcribe").
			Int("status", resp.StatusCode()).
			Msg("process request rejected")
		return models.ProcessingResult{}, err
	}

	return parseResult(resp.Body())
}
