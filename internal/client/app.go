package client

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-read-sync/internal/logger"
	"github.com/MKhiriev/go-read-sync/internal/service"
	"github.com/MKhiriev/go-read-sync/internal/workers"
)

// App is the headless client runtime: it owns the wired client services and
// keeps the background sync coordinator running until the process receives a
// termination signal.
type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp wraps pre-wired client services into a runnable application.
func NewApp(services *service.ClientServices, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServicesGiven
	}

	return &App{
		services: services,
		workers:  workers.NewWorkers(services.Coordinator),
		logger:   log,
	}, nil
}

// Run launches the sync coordinator and blocks until the process receives
// SIGTERM, SIGINT, or SIGQUIT. In-flight sync rounds are allowed to finish
// before Run returns.
func (a *App) Run() error {
	a.workers.Run()
	a.services.Coordinator.SetOnline(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-quit

	a.logger.Info().Str("signal", sig.String()).Msg("shutting down client...")
	a.services.Coordinator.Stop()

	return nil
}

// Services exposes the wired client services so embedding applications can
// write through [store.SyncWriter] and subscribe to cache invalidation.
func (a *App) Services() *service.ClientServices {
	return a.services
}
