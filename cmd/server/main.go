// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/handler"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/server"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/workers"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error occurred during config initialization")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	repos, err := store.NewRepositories(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error occurred during repositories initialization")
	}

	services := service.NewServices(repos, cfg, log)
	handlers := handler.NewHandlers(services, cfg, log)

	backgroundWorkers := workers.NewWorkers(
		workers.NewAvatarMirrorWorker(services.AvatarMirrorer, log),
	)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error occurred during server initialization")
	}

	srv.RunServer()
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
