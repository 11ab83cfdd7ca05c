package config

import (
	"fmt"
	"time"
)

// Default client sync settings applied when the corresponding values are
// absent from every configuration source.
const (
	DefaultSyncInterval     = 30 * time.Second
	DefaultMinTableInterval = 5 * time.Second
	DefaultPushLimit        = 500
	DefaultPullLimit        = 2000
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the sync server base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the device-local sync database.
	DSN string
	// DiagnosticsPath is the append-only sync diagnostics log file path.
	DiagnosticsPath string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains the client coordinator's scheduling and batching
// settings, with defaults applied.
type ClientSync struct {
	// Interval defines how often the periodic full sync runs.
	Interval time.Duration
	// MinTableInterval is the per-table sync throttle window.
	MinTableInterval time.Duration
	// PushLimit caps rows per push request.
	PushLimit int
	// PullLimit caps rows per pull page.
	PullLimit int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains sync scheduling settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies sync-scheduling defaults, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:             cfg.Storage.Local.DSN,
				DiagnosticsPath: cfg.Storage.Local.DiagnosticsPath,
			},
		},
		Sync: ClientSync{
			Interval:         cfg.Sync.Interval,
			MinTableInterval: cfg.Sync.MinTableInterval,
			PushLimit:        cfg.Sync.PushLimit,
			PullLimit:        cfg.Sync.PullLimit,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = DefaultSyncInterval
	}
	if cfg.Sync.MinTableInterval == 0 {
		cfg.Sync.MinTableInterval = DefaultMinTableInterval
	}
	if cfg.Sync.PushLimit <= 0 {
		cfg.Sync.PushLimit = DefaultPushLimit
	}
	if cfg.Sync.PullLimit <= 0 {
		cfg.Sync.PullLimit = DefaultPullLimit
	}
}
