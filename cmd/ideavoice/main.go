// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/idea-voice/internal/adapter"
	"github.com/MKhiriev/idea-voice/internal/capture"
	"github.com/MKhiriev/idea-voice/internal/client"
	"github.com/MKhiriev/idea-voice/internal/config"
	"github.com/MKhiriev/idea-voice/internal/logger"
	"github.com/MKhiriev/idea-voice/internal/service"
	"github.com/MKhiriev/idea-voice/internal/store"
	"github.com/MKhiriev/idea-voice/internal/tui"
	"github.com/MKhiriev/idea-voice/internal/workers"
	"github.com/MKhiriev/idea-voice/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("ideavoice").Fatal().Err(err).Msg("error getting configs")
	}

	// the TUI owns the terminal, so interactive runs log to a file
	args := flag.Args()
	log := logger.NewClientLogger("ideavoice", cfg.App.LogFile)
	if len(args) > 0 {
		log = logger.NewLogger("ideavoice-cli")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	transcriber, err := adapter.NewTranscriber(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create transcriber")
	}

	services := service.NewClientServices(storages, transcriber, models.ParseLanguage(cfg.App.Language), log)

	recorder := capture.NewRecorder(capture.NewPortAudioSource(), cfg.Capture.SampleRate, log)
	ui := tui.New(services, recorder, buildInfo, log)

	startup := workers.NewWorkers(
		workers.NewStaleProcessingWorker(storages.NoteRepository, services.SettingsService.Language, log),
	)

	app := client.NewApp(services, ui, startup, cfg.Adapter.RequestTimeout, log)
	if err = app.Run(ctx, args); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		_ = storages.Close()
		os.Exit(1)
	}
}
