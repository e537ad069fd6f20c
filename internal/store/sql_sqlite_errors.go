// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified covers errors the storage layer has no sentinel for
	// (constraint violations, malformed SQL, scan errors).
	Unclassified ErrorClassification = iota

	// Unavailable means the database cannot serve requests at all.
	Unavailable

	// QuotaExceeded means the write did not fit.
	QuotaExceeded
)

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SQLiteErrorClassifier implements [ErrorClassificator] for mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It unwraps err as a
// sqlite3.Error and maps its primary result code. A closed pool or
// connection is reported as [Unavailable].
//
// Unavailable codes: SQLITE_CANTOPEN, SQLITE_IOERR, SQLITE_BUSY,
// SQLITE_LOCKED, SQLITE_READONLY, SQLITE_CORRUPT, SQLITE_NOTADB, SQLITE_PERM.
//
// QuotaExceeded codes: SQLITE_FULL, SQLITE_TOOBIG.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	if errors.Is(err, sql.ErrConnDone) || strings.Contains(err.Error(), "database is closed") {
		return Unavailable
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.Code {
	case sqlite3.ErrFull, sqlite3.ErrTooBig:
		return QuotaExceeded

	case sqlite3.ErrCantOpen,
		sqlite3.ErrIoErr,
		sqlite3.ErrBusy,
		sqlite3.ErrLocked,
		sqlite3.ErrReadonly,
		sqlite3.ErrCorrupt,
		sqlite3.ErrNotADB,
		sqlite3.ErrPerm:
		return Unavailable
	}

	return Unclassified
}

// classifyError wraps err with the storage sentinel matching its
// classification so callers can use errors.Is. Unclassified errors are
// returned unchanged.
func (db *DB) classifyError(err error) error {
	if err == nil {
		return nil
	}

	switch db.errorClassificator.Classify(err) {
	case Unavailable:
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	case QuotaExceeded:
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}

	return err
}
