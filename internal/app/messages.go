// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// headless idea-voice commands.
//
// All Msg* constants are format strings written to stdout by the commands to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording across commands.
package app

const (
	// MsgExported reports a written backup: note count and file path.
	MsgExported = "exported %d notes to %s\n"

	// MsgImported reports a restore: imported count, then skipped count.
	MsgImported = "imported %d notes, skipped %d invalid items\n"

	// MsgCleared reports that every note was removed.
	MsgCleared = "all notes cleared\n"

	// MsgNoNotes is printed by the list command for an empty store.
	MsgNoNotes = "no notes\n"

	// MsgNoteLine is one row of the list command: id, date, state,
	// duration in seconds and title.
	MsgNoteLine = "%s  %s  %-10s  %3ds  %s\n"

	// MsgUsage lists the headless commands.
	MsgUsage = "usage: ideavoice [flags] [export [file] | import <file> | list | clear]\n"
)
