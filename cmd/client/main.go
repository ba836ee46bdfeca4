// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/tunnel-dash/internal/adapter"
	"github.com/MKhiriev/tunnel-dash/internal/client"
	"github.com/MKhiriev/tunnel-dash/internal/config"
	"github.com/MKhiriev/tunnel-dash/internal/logger"
	"github.com/MKhiriev/tunnel-dash/internal/service"
	"github.com/MKhiriev/tunnel-dash/internal/store"
	"github.com/MKhiriev/tunnel-dash/internal/tui"
	"github.com/MKhiriev/tunnel-dash/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewClientLogger("tunnel-dash")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	metricsAdapter, err := adapter.NewHTTPMetricsAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create metrics adapter")
	}

	pushDialer, err := adapter.NewWebSocketPushDialer(cfg.Adapter, metricsAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create push dialer")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	bridge := tui.NewBridge()
	services := service.NewClientServices(localStorage, metricsAdapter, pushDialer, bridge, cfg, log)
	ui := tui.New(services, bridge, cfg.Sync, buildInfo, log)

	app, err := client.NewApp(services, metricsAdapter, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		localStorage.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
