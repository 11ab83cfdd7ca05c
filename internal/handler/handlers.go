package handler

import (
	"github.com/MKhiriev/go-read-sync/internal/config"
	"github.com/MKhiriev/go-read-sync/internal/handler/http"
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, tables *registry.Registry, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, tables, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
