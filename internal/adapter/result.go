// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/idea-voice/internal/validators"
	"github.com/MKhiriev/idea-voice/models"
)

var resultValidator = validators.NewNoteValidator()

// parseResult decodes the JSON document produced by the service. Code
// fences around the document are tolerated. Missing lists become empty.
func parseResult(raw []byte) (models.ProcessingResult, error) {
	text := strings.TrimSpace(string(raw))
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if text == "" {
		return models.ProcessingResult{}, fmt.Errorf("%w: no content", ErrMalformedResponse)
	}

	var result models.ProcessingResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return models.ProcessingResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if err := resultValidator.Validate(context.Background(), result); err != nil {
		return models.ProcessingResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if result.KeyPoints == nil {
		result.KeyPoints = []string{}
	}
	if result.Tags == nil {
		result.Tags = []string{}
	}
	if result.ActionItems == nil {
		result.ActionItems = []string{}
	}

	return result, nil
}
