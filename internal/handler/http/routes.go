package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/healthz", h.healthz)
	router.Get("/api/version/", h.getBuildInfo)

	// key lookups
	router.Group(func(r chi.Router) {
		r.Get("/", h.lookupKey)
		r.Get("/api/keys", h.lookupKey)
		r.Get("/api/keys/{fw}", h.getKey)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
