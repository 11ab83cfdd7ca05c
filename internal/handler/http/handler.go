package http

import (
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/internal/service"
)

type Handler struct {
	services *service.Services
	tables   *registry.Registry

	logger *logger.Logger
}

func NewHandler(services *service.Services, tables *registry.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tables:   tables,
		logger:   logger,
	}
}
