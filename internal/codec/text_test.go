// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/idea-voice/models"
)

func TestFormatNote_English(t *testing.T) {
	note := completeNote()
	date := time.UnixMilli(note.CreatedAt).Format("1/2/2006")

	want := "Title: Grocery List\n" +
		"Date: " + date + "\n\n" +
		"Summary:\nThings to buy.\n\n" +
		"Key Points:\n- milk\n- eggs\n\n" +
		"Action Items:\n[ ] Buy milk\n\n" +
		"Transcript:\nBuy milk and eggs"

	assert.Equal(t, want, FormatNote(note, models.English))
}

func TestFormatNote_SectionOrder(t *testing.T) {
	text := FormatNote(completeNote(), models.Thai)

	labels := []string{"ชื่อเรื่อง", "วันที่", "สรุป", "ประเด็นสำคัญ", "สิ่งที่ต้องทำ", "คำถอดความ"}
	last := -1
	for _, label := range labels {
		idx := strings.Index(text, label+":")
		assert.Greater(t, idx, last, label)
		last = idx
	}
}

func TestFormatNote_EmptyLists(t *testing.T) {
	note := completeNote()
	note.KeyPoints = nil
	note.ActionItems = nil

	text := FormatNote(note, models.English)
	assert.Contains(t, text, "Key Points:\n\nAction Items:\n\nTranscript:")
	assert.NotContains(t, text, "- ")
	assert.NotContains(t, text, "[ ]")
}

func TestNoteFileName(t *testing.T) {
	note := completeNote()
	assert.Equal(t, "Grocery_List.txt", NoteFileName(note, ".txt"))

	note.Title = "  a/b   c  "
	assert.Equal(t, "a_b_c.wav", NoteFileName(note, ".wav"))

	note.Title = ""
	assert.Equal(t, "n1.txt", NoteFileName(note, ".txt"))
}
