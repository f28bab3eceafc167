package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/logger"
)

// withLogging writes one access-log line per request. Bodies are never
// logged: they carry passwords and hidden text.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Int64("request_size", r.ContentLength).
			Send()
	})
}
