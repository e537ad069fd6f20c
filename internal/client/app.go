// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/idea-voice/internal/app"
	"github.com/MKhiriev/idea-voice/internal/codec"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/internal/service"
	"github.com/MKhiriev/idea-voice/internal/workers"
	"golang.org/x/sync/errgroup"
)

const (
	cmdExport = "export"
	cmdImport = "import"
	cmdList   = "list"
	cmdClear  = "clear"

	backupFileMode = 0o600
)

type App struct {
	services        *service.ClientServices
	ui              UI
	workers         *workers.Workers
	shutdownTimeout time.Duration
	logger          *logger.Logger
	out             io.Writer
}

// NewApp wires the runtime. shutdownTimeout bounds how long Run waits for
// outstanding processing after the UI exits.
func NewApp(services *service.ClientServices, ui UI, workers *workers.Workers, shutdownTimeout time.Duration, logger *logger.Logger) *App {
	return &App{
		services:        services,
		ui:              ui,
		workers:         workers,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		out:             os.Stdout,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if err := a.workers.Run(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("startup workers failed")
	}

	if len(args) > 0 {
		return a.runCommand(ctx, args)
	}
	return a.runInteractive(ctx)
}

func (a *App) runInteractive(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	uiDone := make(chan struct{})

	g.Go(func() error {
		defer close(uiDone)
		return a.ui.Run(gctx)
	})

	g.Go(func() error {
		<-uiDone
		a.waitForProcessing()
		return nil
	})

	return g.Wait()
}

// waitForProcessing lets outstanding cycles store their results. Cycles still
// running after shutdownTimeout are abandoned; their notes stay processing
// until the next start fails them.
func (a *App) waitForProcessing() {
	done := make(chan struct{})
	go func() {
		a.services.LifecycleService.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(a.shutdownTimeout):
		a.logger.Warn().
			Str("func", "App.waitForProcessing").
			Dur("timeout", a.shutdownTimeout).
			Msg("exiting with notes still processing")
	}
}

func (a *App) runCommand(ctx context.Context, args []string) error {
	switch args[0] {
	case cmdExport:
		path := codec.BackupFileName(time.Now())
		if len(args) > 1 {
			path = args[1]
		}
		return a.export(ctx, path)
	case cmdImport:
		if len(args) < 2 {
			return fmt.Errorf("%s: %w", cmdImport, ErrMissingArgument)
		}
		return a.restore(ctx, args[1])
	case cmdList:
		return a.list(ctx)
	case cmdClear:
		return a.clear(ctx)
	default:
		fmt.Fprint(a.out, app.MsgUsage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

func (a *App) export(ctx context.Context, path string) error {
	if err := a.services.LifecycleService.Load(ctx); err != nil {
		return err
	}

	data, err := a.services.BackupService.Export(ctx)
	if err != nil {
		return fmt.Errorf("export notes: %w", err)
	}
	if err = os.WriteFile(path, data, backupFileMode); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	fmt.Fprintf(a.out, app.MsgExported, a.services.LifecycleService.Notes().Len(), path)
	return nil
}

func (a *App) restore(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	report, err := a.services.BackupService.Import(ctx, data)
	if err != nil {
		return fmt.Errorf("import notes: %w", err)
	}

	fmt.Fprintf(a.out, app.MsgImported, report.Imported, report.Skipped)
	return nil
}

func (a *App) list(ctx context.Context) error {
	if err := a.services.LifecycleService.Load(ctx); err != nil {
		return err
	}

	notes := a.services.LifecycleService.Notes().Snapshot()
	if len(notes) == 0 {
		fmt.Fprint(a.out, app.MsgNoNotes)
		return nil
	}

	for _, n := range notes {
		created := time.UnixMilli(n.CreatedAt).Format(time.DateTime)
		fmt.Fprintf(a.out, app.MsgNoteLine, n.ID, created, n.State, n.DurationSeconds, n.Title)
	}
	return nil
}

func (a *App) clear(ctx context.Context) error {
	if err := a.services.BackupService.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprint(a.out, app.MsgCleared)
	return nil
}
