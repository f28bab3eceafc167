package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fractal-cipher/internal/app"
	"github.com/MKhiriev/fractal-cipher/internal/crypto"
	"github.com/MKhiriev/fractal-cipher/internal/frame"
	"github.com/MKhiriev/fractal-cipher/internal/imageio"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/lsb"
	"github.com/MKhiriev/fractal-cipher/internal/service"
	"github.com/MKhiriev/fractal-cipher/internal/store"
	"github.com/MKhiriev/fractal-cipher/internal/utils"
)

var errorStatusMap = map[error]int{
	crypto.ErrInvalidPayload:   http.StatusUnprocessableEntity,
	crypto.ErrDecryptionFailed: http.StatusUnprocessableEntity,
	crypto.ErrEmptyPassword:    http.StatusBadRequest,
	crypto.ErrUnknownPolicy:    http.StatusBadRequest,

	frame.ErrInvalidOrMissingMessage: http.StatusUnprocessableEntity,
	frame.ErrTruncatedMessage:        http.StatusUnprocessableEntity,
	frame.ErrPayloadTooLarge:         http.StatusRequestEntityTooLarge,

	lsb.ErrCapacityExceeded:   http.StatusRequestEntityTooLarge,
	lsb.ErrInvalidPixelBuffer: http.StatusBadRequest,

	imageio.ErrUnsupportedFormat: http.StatusUnsupportedMediaType,
	imageio.ErrImageTooLarge:     http.StatusRequestEntityTooLarge,
	imageio.ErrCorruptImage:      http.StatusUnprocessableEntity,

	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrArtifactNotFound:      http.StatusNotFound,
	store.ErrInvalidArtifactID:     http.StatusNotFound,
	store.ErrArtifactAlreadyExists: http.StatusConflict,
	store.ErrArtifactNotSaved:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	ErrIntegrityCheckFailed: http.StatusBadRequest,
	ErrMissingImagePart:     http.StatusBadRequest,
	ErrInvalidQuery:         http.StatusBadRequest,
	ErrInvalidGzipBody:      http.StatusBadRequest,
}

func statusFromError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the user-facing text for err. Transport errors
// are described here; everything else comes from [app.UserMessage].
func messageFromError(err error) string {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return app.MsgImageTooLarge
	case errors.Is(err, ErrIntegrityCheckFailed):
		return app.MsgIntegrityCheckFailed
	case errors.Is(err, ErrMissingImagePart):
		return app.MsgNoImage
	case errors.Is(err, ErrInvalidQuery), errors.Is(err, ErrInvalidGzipBody):
		return app.MsgInvalidDataProvided
	}
	return app.UserMessage(err)
}

// writeServiceError logs err and answers with the mapped status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, caller string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", caller).Int("status", status).Msg("request failed")

	utils.WriteError(w, r, messageFromError(err), status)
}
