package service

import (
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/internal/store"
)

type Services struct {
	SyncService SyncService
}

func NewServices(storages *store.Storages, tables *registry.Registry, logger *logger.Logger) *Services {
	return &Services{
		SyncService: NewSyncService(storages.Merge, storages.Log, tables, logger),
	}
}
