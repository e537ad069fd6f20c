// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/idea-voice/internal/config"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/models"
)

func newTestHTTPTranscriber(t *testing.T, serverURL, apiKey string) Transcriber {
	t.Helper()
	tr, err := NewHTTPTranscriber(
		config.App{GeminiAPIKey: apiKey},
		config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second},
		logger.Nop(),
	)
	require.NoError(t, err)
	return tr
}

// ── Transcribe ──────────────────────────────────────────────────────────────

func TestHTTPTranscriber_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, processPath, r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req processRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, base64.StdEncoding.EncodeToString(wavAudio.Data), req.AudioBase64)
		assert.Equal(t, "audio/wav", req.MIMEType)
		assert.Equal(t, "th", req.Language)
		assert.Equal(t, buildPrompt(models.Thai), req.Prompt)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"T","transcription":"X","summary":"S","keyPoints":["k"],"tags":["a"]}`))
	}))
	defer srv.Close()

	got, err := newTestHTTPTranscriber(t, srv.URL, "secret").Transcribe(context.Background(), wavAudio, models.Thai)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "X", got.Transcript)
	assert.Equal(t, []string{"k"}, got.KeyPoints)
	assert.Equal(t, []string{}, got.ActionItems)
}

func TestHTTPTranscriber_NoKeyNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"title":"T","transcription":"X","summary":"S","keyPoints":[],"tags":[]}`))
	}))
	defer srv.Close()

	_, err := newTestHTTPTranscriber(t, srv.URL, "").Transcribe(context.Background(), wavAudio, models.English)
	require.NoError(t, err)
}

func TestHTTPTranscriber_StatusErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{status: http.StatusRequestEntityTooLarge, wantErr: ErrPayloadTooLarge},
		{status: http.StatusTooManyRequests, wantErr: ErrRateLimited},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{status: http.StatusTeapot, wantErr: ErrProcessing},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestHTTPTranscriber(t, srv.URL, "").Transcribe(context.Background(), wavAudio, models.English)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrProcessing)
		})
	}
}

func TestHTTPTranscriber_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	_, err := newTestHTTPTranscriber(t, srv.URL, "").Transcribe(context.Background(), wavAudio, models.English)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestHTTPTranscriber_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestHTTPTranscriber(t, url, "").Transcribe(context.Background(), wavAudio, models.English)
	assert.ErrorIs(t, err, ErrProcessing)
}

// ── NewHTTPTranscriber ──────────────────────────────────────────────────────

func TestNewHTTPTranscriber_InvalidAddress(t *testing.T) {
	_, err := NewHTTPTranscriber(config.App{}, config.Adapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8090", want: "http://localhost:8090"},
		{raw: "https://ai.example.com/", want: "https://ai.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
