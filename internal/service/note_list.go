// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"
	"sync"

	"github.com/MKhiriev/idea-voice/models"
)

// NoteList is the single in-memory collection of notes shown to the user.
// Every mutation replaces whole records by id and signals Changes.
type NoteList struct {
	mu      sync.RWMutex
	notes   map[string]models.Note
	changes chan struct{}
}

func NewNoteList() *NoteList {
	return &NoteList{
		notes:   make(map[string]models.Note),
		changes: make(chan struct{}, 1),
	}
}

// Upsert inserts note or replaces the note with the same id.
func (l *NoteList) Upsert(note models.Note) {
	l.mu.Lock()
	l.notes[note.ID] = note
	l.mu.Unlock()
	l.notify()
}

// Remove drops the note with id. Removing an absent id is a no-op.
func (l *NoteList) Remove(id string) {
	l.mu.Lock()
	_, ok := l.notes[id]
	delete(l.notes, id)
	l.mu.Unlock()
	if ok {
		l.notify()
	}
}

// Replace swaps the whole collection for notes.
func (l *NoteList) Replace(notes []models.Note) {
	next := make(map[string]models.Note, len(notes))
	for _, n := range notes {
		next[n.ID] = n
	}

	l.mu.Lock()
	l.notes = next
	l.mu.Unlock()
	l.notify()
}

// Get returns the note with id.
func (l *NoteList) Get(id string) (models.Note, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n, ok := l.notes[id]
	return n, ok
}

// Len returns the number of notes.
func (l *NoteList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.notes)
}

// Snapshot returns a copy of the collection, newest first. Notes created in
// the same millisecond are ordered by id.
func (l *NoteList) Snapshot() []models.Note {
	l.mu.RLock()
	out := make([]models.Note, 0, len(l.notes))
	for _, n := range l.notes {
		out = append(out, n)
	}
	l.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// Changes delivers a signal after mutations. Signals are coalesced: a
// receiver that falls behind sees one pending signal, not one per change.
func (l *NoteList) Changes() <-chan struct{} {
	return l.changes
}

func (l *NoteList) notify() {
	select {
	case l.changes <- struct{}{}:
	default:
	}
}
