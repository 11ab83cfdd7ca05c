package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-read-sync/internal/config"
	"github.com/MKhiriev/go-read-sync/internal/logger"
)

// Storages groups the server-side storage repositories.
type Storages struct {
	// Merge serves the last-write-wins tables.
	Merge MergeStorage
	// Log serves the append-only tables.
	Log LogStorage
}

// NewStorages opens the server database, runs pending migrations and wires
// up the repositories.
func NewStorages(cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	return &Storages{
		Merge: NewMergeRepository(db, logger),
		Log:   NewLogRepository(db, logger),
	}, nil
}
