// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the idea-voice application runtime.
//
// It runs the startup workers, then either the terminal UI or one headless
// command (export, import, list, clear), and on exit waits for outstanding
// note processing so finished results reach the store.
package client
