// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/idea-voice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drained(l *NoteList) bool {
	select {
	case <-l.Changes():
		return true
	default:
		return false
	}
}

func TestNoteList_UpsertReplacesByID(t *testing.T) {
	l := NewNoteList()
	l.Upsert(models.Note{ID: "a", Title: "Processing..."})
	l.Upsert(models.Note{ID: "a", Title: "Grocery List"})

	require.Equal(t, 1, l.Len())
	n, ok := l.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Grocery List", n.Title)
}

func TestNoteList_SnapshotOrder(t *testing.T) {
	l := NewNoteList()
	l.Replace([]models.Note{
		{ID: "b", CreatedAt: 10},
		{ID: "c", CreatedAt: 30},
		{ID: "a", CreatedAt: 10},
	})

	got := l.Snapshot()
	ids := make([]string, 0, len(got))
	for _, n := range got {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"c", "b", "a"}, ids)
}

func TestNoteList_SnapshotIsCopy(t *testing.T) {
	l := NewNoteList()
	l.Upsert(models.Note{ID: "a", Title: "one"})

	snap := l.Snapshot()
	snap[0].Title = "changed"

	n, _ := l.Get("a")
	assert.Equal(t, "one", n.Title)
}

func TestNoteList_ChangesAreCoalesced(t *testing.T) {
	l := NewNoteList()
	l.Upsert(models.Note{ID: "a"})
	l.Upsert(models.Note{ID: "b"})
	l.Remove("a")

	assert.True(t, drained(l))
	assert.False(t, drained(l))
}

func TestNoteList_RemoveAbsentDoesNotSignal(t *testing.T) {
	l := NewNoteList()
	l.Remove("missing")

	assert.False(t, drained(l))
	assert.Zero(t, l.Len())
}

func TestNoteList_ReplaceNil(t *testing.T) {
	l := NewNoteList()
	l.Upsert(models.Note{ID: "a"})
	l.Replace(nil)

	assert.Zero(t, l.Len())
	assert.Empty(t, l.Snapshot())
}
