package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// every sync route needs the calling device's identity
	router.Group(func(r chi.Router) {
		r.Use(h.withDeviceIdentity)

		r.Route("/api/sync", func(r chi.Router) {
			r.Get("/timestamp", h.currentTimestamp)
			r.Get("/{table}", h.pullRows)
			r.Post("/{table}", h.pushRows)
		})

		r.Route("/api/synclog", func(r chi.Router) {
			r.Get("/{table}", h.pullLog)
			r.Post("/{table}", h.appendLog)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
