package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/adapter"
	"github.com/MKhiriev/go-read-sync/internal/config"
	"github.com/MKhiriev/go-read-sync/internal/hlc"
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/internal/store"
)

type ClientServices struct {
	// Writer is the single write path applications use to mutate synced
	// tables.
	Writer *store.SyncWriter
	// Engine runs individual sync rounds.
	Engine SyncEngine
	// Coordinator schedules syncs: periodic, on change, on reconnect.
	Coordinator SyncCoordinator
}

// NewClientServices wires the whole client sync stack: it loads the
// persisted device identity, seeds the clock with it, hands the identity to
// the transport, and connects the writer's dirty-table notifications to the
// coordinator.
func NewClientServices(storages *store.ClientStorages, remote adapter.ServerAdapter, tables *registry.Registry, cfg config.ClientSync, log *logger.Logger, diagnostics *logger.Logger) (*ClientServices, error) {
	deviceID, err := storages.Local.DeviceID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load device identity: %w", err)
	}
	remote.SetDeviceID(deviceID)

	clock := hlc.NewClock(deviceID)
	writer := store.NewSyncWriter(storages.Local, clock, tables, log)
	engine := NewSyncEngine(storages.Local, writer, remote, clock, tables, cfg.PushLimit, cfg.PullLimit)
	coordinator := NewSyncCoordinator(engine, tables, cfg, diagnostics)

	writer.OnDirty(coordinator.NotifyChange)

	return &ClientServices{
		Writer:      writer,
		Engine:      engine,
		Coordinator: coordinator,
	}, nil
}
