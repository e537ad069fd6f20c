// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Language is the user-selected locale. It drives both UI strings and the
// output language requested from the transcription service.
type Language string

const (
	English Language = "en"
	Thai    Language = "th"
)

// ParseLanguage normalizes s to a supported Language, falling back to English.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case Thai:
		return Thai
	default:
		return English
	}
}

// Languages lists the supported languages in display order.
func Languages() []Language {
	return []Language{English, Thai}
}
