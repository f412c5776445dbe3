package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-campus-blog/internal/adapter"
	"github.com/MKhiriev/go-campus-blog/internal/config"
	"github.com/MKhiriev/go-campus-blog/internal/handler"
	"github.com/MKhiriev/go-campus-blog/internal/logger"
	"github.com/MKhiriev/go-campus-blog/internal/server"
	"github.com/MKhiriev/go-campus-blog/internal/service"
	"github.com/MKhiriev/go-campus-blog/internal/store"
	"github.com/MKhiriev/go-campus-blog/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	// a linker-provided version wins over the "dev" default
	if buildVersion != "N/A" && cfg.App.Version == "dev" {
		cfg.App.Version = buildVersion
	}
	cfg.App.BuildDate = buildDate
	cfg.App.BuildCommit = buildCommit

	log := logger.NewLogger("go-campus-blog", cfg.App.IsProduction())
	log.Debug().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	mailer, err := adapter.NewMailer(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	services, err := service.NewServices(storages, mailer, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers(storages, cfg.Workers, log)
	jobs.Run(ctx)
	defer jobs.Stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
