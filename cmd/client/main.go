package main

import (
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/adapter"
	"github.com/MKhiriev/go-read-sync/internal/client"
	"github.com/MKhiriev/go-read-sync/internal/config"
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/registry"
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

	log := logger.NewLogger("read-sync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	diagnostics := logger.Nop()
	if path := cfg.Storage.DB.DiagnosticsPath; path != "" {
		diagnostics = logger.NewDiagnosticsLogger(path)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(localStorage, serverAdapter, registry.Default(), cfg.Sync, log, diagnostics)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
