package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/utils"
)

// withUploadLimit caps the request body at maxUploadBytes. Reads past the
// limit fail with *http.MaxBytesError, which maps to 413.
func (h *Handler) withUploadLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// withBodyIntegrity verifies the HashSHA256 header against the raw request
// body. Requests without the header, or a server without a hash key, pass.
func (h *Handler) withBodyIntegrity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get(utils.HashHeader)
		if h.hasher == nil || signature == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.withBodyIntegrity").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeServiceError(w, r, err, "*Handler.withBodyIntegrity")
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, signature) {
			log.Error().Str("func", "*Handler.withBodyIntegrity").
				Str("hash from request", signature).
				Int("body size", len(body)).
				Msg("hashes are not equal")
			writeServiceError(w, r, ErrIntegrityCheckFailed, "*Handler.withBodyIntegrity")
			return
		}

		next.ServeHTTP(w, r)
	})
}
