// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrProcessing is the umbrella error of the transcription client.
	ErrProcessing = errors.New("audio processing failed")

	// ErrMissingCredential is returned when no API key is configured.
	ErrMissingCredential = fmt.Errorf("%w: missing API credential", ErrProcessing)

	// ErrMalformedResponse is returned when the service reply is empty or is
	// not a valid result document.
	ErrMalformedResponse = fmt.Errorf("%w: malformed response", ErrProcessing)

	// ErrEmptyAudio is returned when there is nothing to send.
	ErrEmptyAudio = fmt.Errorf("%w: empty audio", ErrProcessing)
)

// HTTP status errors of the self-hosted endpoint.
var (
	ErrBadRequest          = fmt.Errorf("%w: bad request", ErrProcessing)
	ErrUnauthorized        = fmt.Errorf("%w: unauthorized", ErrProcessing)
	ErrForbidden           = fmt.Errorf("%w: forbidden", ErrProcessing)
	ErrNotFound            = fmt.Errorf("%w: not found", ErrProcessing)
	ErrPayloadTooLarge     = fmt.Errorf("%w: payload too large", ErrProcessing)
	ErrRateLimited         = fmt.Errorf("%w: rate limited", ErrProcessing)
	ErrInternalServerError = fmt.Errorf("%w: internal server error", ErrProcessing)
	ErrBadGateway          = fmt.Errorf("%w: bad gateway", ErrProcessing)
	ErrServiceUnavailable  = fmt.Errorf("%w: service unavailable", ErrProcessing)
)

// processingError wraps err with ErrProcessing unless it already is one.
func processingError(op string, err error) error {
	if errors.Is(err, ErrProcessing) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrProcessing, err)
}
