// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags. Positional arguments left after
// the flags (headless commands such as "export backup.json") stay available
// through flag.Args.
//
// Flags:
//
//	-d database file path
//	-c/-config json file path with configs
//	-lang default language (en, th)
//	-log-file client log file path
//	-backend transcription backend (gemini, http)
//	-model generative model name
//	-a processing endpoint address for the http backend
//	-request-timeout transcription request timeout (e.g., "90s", "2m")
//	-sample-rate capture sample rate in Hz
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var language string
	var logFile string
	var backend string
	var model string
	var adapterAddress string
	var requestTimeout time.Duration
	var sampleRate int

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&language, "lang", "", "Default language (en, th)")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&backend, "backend", "", "Transcription backend (gemini, http)")
	flag.StringVar(&model, "model", "", "Generative model name")
	flag.StringVar(&adapterAddress, "a", "", "Processing endpoint address for the http backend")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 90s, 2m)")
	flag.IntVar(&sampleRate, "sample-rate", 0, "Capture sample rate in Hz")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Language: language,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			Backend:        backend,
			Model:          model,
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Capture: Capture{
			SampleRate: sampleRate,
		},
		JSONFilePath: jsonConfigPath,
	}
}
