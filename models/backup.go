// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BackupRecord is one element of the backup JSON array. Field names are part
// of the stable backup format and must not change.
type BackupRecord struct {
	ID            string   `json:"id"`
	CreatedAt     int64    `json:"createdAt"`
	Duration      int      `json:"duration"`
	Title         string   `json:"title"`
	Transcription string   `json:"transcription"`
	Summary       string   `json:"summary"`
	KeyPoints     []string `json:"keyPoints"`
	Tags          []string `json:"tags"`
	ActionItems   []string `json:"actionItems"`
	AudioBase64   string   `json:"audioBase64"`
	MIMEType      string   `json:"mimeType"`
	Error         string   `json:"error,omitempty"`
}

// ImportReport summarizes the outcome of a backup restore.
type ImportReport struct {
	// Imported is the number of notes written to the store.
	Imported int
	// Skipped is the number of array items rejected by validation.
	Skipped int
}
