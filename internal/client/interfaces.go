// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit. With no args
	// it runs the interactive UI, otherwise args name a headless command.
	Run(ctx context.Context, args []string) error
}

// UI is the interactive front end run by the client.
type UI interface {
	Run(ctx context.Context) error
}
