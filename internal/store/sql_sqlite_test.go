// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		raw      string
		wantPath string
		wantDSN  string
	}{
		{raw: "notes.db", wantPath: "notes.db", wantDSN: "notes.db?" + connectionParams},
		{raw: "file:notes.db", wantPath: "notes.db", wantDSN: "file:notes.db?" + connectionParams},
		{raw: "notes.db?_busy_timeout=100", wantPath: "notes.db", wantDSN: "notes.db?_busy_timeout=100"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			path, dsn := sqliteDSN(tt.raw)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Unclassified, c.Classify(nil))
	assert.Equal(t, Unclassified, c.Classify(assert.AnError))
	assert.Equal(t, QuotaExceeded, c.Classify(sqlite3.Error{Code: sqlite3.ErrFull}))
	assert.Equal(t, Unavailable, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrCantOpen})))
	assert.Equal(t, Unavailable, c.Classify(sqlite3.Error{Code: sqlite3.ErrNotADB}))
	assert.Equal(t, Unclassified, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
}
