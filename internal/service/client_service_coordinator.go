package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-read-sync/internal/config"
	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/registry"
	"github.com/MKhiriev/go-read-sync/models"
)

type syncCoordinator struct {
	engine SyncEngine
	tables *registry.Registry

	interval         time.Duration
	minTableInterval time.Duration

	diagnostics *logger.Logger

	mu           sync.Mutex
	cancel       context.CancelFunc
	runCtx       context.Context
	online       bool
	inFlight     bool
	lastAttempt  map[string]time.Time
	onInvalidate func(table string)

	wg sync.WaitGroup
}

// NewSyncCoordinator creates a coordinator over the given engine. It starts
// out online and idle; call Start to launch the periodic baseline sync.
// diagnostics receives one entry per sync attempt and may be the no-op
// logger; it is never allowed to fail or delay a sync.
func NewSyncCoordinator(engine SyncEngine, tables *registry.Registry, cfg config.ClientSync, diagnostics *logger.Logger) SyncCoordinator {
	if diagnostics == nil {
		diagnostics = logger.Nop()
	}

	return &syncCoordinator{
		engine:           engine,
		tables:           tables,
		interval:         cfg.Interval,
		minTableInterval: cfg.MinTableInterval,
		diagnostics:      diagnostics,
		online:           true,
		lastAttempt:      make(map[string]time.Time),
		onInvalidate:     func(string) {},
	}
}

// Start implements [SyncCoordinator]. It stops any previously running loop,
// then launches a background goroutine that runs a full sync every interval.
// If the interval is zero or negative it defaults to 30 seconds. The
// goroutine exits when ctx is cancelled or Stop is called.
func (c *syncCoordinator) Start(ctx context.Context) {
	interval := c.interval
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	c.Stop()

	c.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.runCtx = runCtx
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-t.C:
				c.trySyncAll(runCtx)
			}
		}
	}()
}

// Stop implements [SyncCoordinator]. It cancels the background goroutine's
// context and blocks until the goroutine and any in-flight sync have fully
// exited. Safe to call when the coordinator is not running.
func (c *syncCoordinator) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.runCtx = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

// Run satisfies the background-worker contract: it starts the coordinator
// detached from any caller context.
func (c *syncCoordinator) Run() {
	c.Start(context.Background())
}

// NotifyChange implements [SyncCoordinator]. The request is best-effort:
// whichever of the drop conditions holds (stopped, offline, in flight,
// throttled), the caller's write has already committed locally and the
// periodic sync will pick it up later.
func (c *syncCoordinator) NotifyChange(table string) {
	c.mu.Lock()

	runCtx := c.runCtx
	if runCtx == nil || !c.online {
		c.mu.Unlock()
		return
	}

	if last, ok := c.lastAttempt[table]; ok && time.Since(last) < c.minTableInterval {
		c.mu.Unlock()
		c.diagnostics.Debug().
			Str("table", table).
			Msg("sync request throttled")
		return
	}

	if c.inFlight {
		c.mu.Unlock()
		c.diagnostics.Debug().
			Str("table", table).
			Msg("sync request dropped: sync already in flight")
		return
	}

	c.inFlight = true
	c.lastAttempt[table] = time.Now()
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		defer c.clearInFlight()
		c.syncTable(runCtx, table)
	}()
}

// SetOnline implements [SyncCoordinator]. Regaining connectivity triggers a
// full sync to flush everything written while offline.
func (c *syncCoordinator) SetOnline(online bool) {
	c.mu.Lock()
	wasOnline := c.online
	c.online = online
	runCtx := c.runCtx
	c.mu.Unlock()

	c.diagnostics.Info().
		Bool("online", online).
		Msg("connectivity changed")

	if online && !wasOnline && runCtx != nil {
		c.trySyncAll(runCtx)
	}
}

// OnCacheInvalidate implements [SyncCoordinator].
func (c *syncCoordinator) OnCacheInvalidate(fn func(table string)) {
	if fn == nil {
		fn = func(string) {}
	}

	c.mu.Lock()
	c.onInvalidate = fn
	c.mu.Unlock()
}

// trySyncAll runs a full sync unless one is already in flight or the
// coordinator is offline. Requests that lose the race are dropped, not
// queued: the ticker guarantees another attempt soon.
func (c *syncCoordinator) trySyncAll(ctx context.Context) {
	c.mu.Lock()
	if !c.online || c.inFlight {
		c.mu.Unlock()
		return
	}
	c.inFlight = true
	now := time.Now()
	for _, table := range c.tables.Tables() {
		c.lastAttempt[table] = now
	}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		defer c.clearInFlight()

		started := time.Now()
		results, err := c.engine.SyncAll(ctx)

		event := c.diagnostics.Info()
		if err != nil {
			event = c.diagnostics.Error().Err(err)
		}
		event.
			Str("trigger", "full").
			Dur("took", time.Since(started)).
			Msg("sync attempt finished")

		for table, result := range results {
			c.reportResult(table, result)
		}
	}()
}

// syncTable drains one table, following HasMore pages until caught up.
func (c *syncCoordinator) syncTable(ctx context.Context, table string) {
	started := time.Now()

	var total models.SyncResult
	var err error
	for {
		var round models.SyncResult
		round, err = c.engine.SyncTable(ctx, table, "")
		total.Merge(round)
		if err != nil || !round.HasMore {
			break
		}
	}

	event := c.diagnostics.Info()
	if err != nil {
		event = c.diagnostics.Error().Err(err)
	}
	event.
		Str("trigger", "change").
		Str("table", table).
		Dur("took", time.Since(started)).
		Msg("sync attempt finished")

	c.reportResult(table, total)
}

func (c *syncCoordinator) reportResult(table string, result models.SyncResult) {
	c.diagnostics.Info().
		Str("table", table).
		Int("pushed", result.Pushed).
		Int("pulled", result.Pulled).
		Int("conflicts", result.Conflicts).
		Strs("errors", result.Errors).
		Msg("table sync result")

	// a push changes local state too: acknowledgements clear the pending
	// flag on the rows that went out, so views keyed on sync state go stale
	if result.Pushed > 0 || result.Pulled > 0 {
		c.mu.Lock()
		invalidate := c.onInvalidate
		c.mu.Unlock()
		invalidate(table)
	}
}

func (c *syncCoordinator) clearInFlight() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}
