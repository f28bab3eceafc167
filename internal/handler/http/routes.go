package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.With(withGZip).Get("/info", h.getServerInfo)

		// uploads: the size limit applies on the wire and again to the
		// inflated body, then integrity runs over what the handler reads
		r.Group(func(r chi.Router) {
			r.Use(h.withUploadLimit, withGZip, h.withUploadLimit, h.withBodyIntegrity)
			r.Post("/encode", h.encode)
			r.Post("/decode", h.decode)
		})

		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			r.Get("/images", h.listImages)
			r.Get("/images/{id}", h.getImage)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
