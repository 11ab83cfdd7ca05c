package main

import (
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/config"
	"github.com/MKhiriev/go-read-sync/internal/handler"
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/internal/server"
	"github.com/MKhiriev/go-read-sync/internal/service"
	"github.com/MKhiriev/go-read-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("read-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	tables := registry.Default()
	services := service.NewServices(storages, tables, log)

	handlers, err := handler.NewHandlers(services, tables, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	servers, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating servers")
	}

	servers.RunServer()
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
