package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/store"
	"github.com/MKhiriev/fractal-cipher/internal/utils"
	"github.com/MKhiriev/fractal-cipher/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listImages(w http.ResponseWriter, r *http.Request) {
	filter, err := parseArtifactFilter(r)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listImages")
		return
	}

	artifacts, err := h.services.ArtifactService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listImages")
		return
	}

	utils.WriteJSON(w, models.ArtifactList{Artifacts: artifacts, Length: len(artifacts)}, http.StatusOK)
}

// getImage streams a stored carrier as an attachment. With a hash key the
// response carries the HMAC of the image bytes.
func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !utils.IsValidID(id) {
		writeServiceError(w, r, store.ErrInvalidArtifactID, "*Handler.getImage")
		return
	}

	artifact, data, err := h.services.ArtifactService.Open(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getImage")
		return
	}

	if h.hasher != nil {
		w.Header().Set(utils.HashHeader, h.hasher.HashHex(data))
	}

	if _, err = utils.WriteAttachment(w, data, artifact.Format.ContentType(), artifact.FileName()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getImage").Msg("error writing image")
	}
}

func parseArtifactFilter(r *http.Request) (models.ArtifactFilter, error) {
	var filter models.ArtifactFilter
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: limit %q", ErrInvalidQuery, raw)
		}
		filter.Limit = limit
	}

	filter.Format = models.ImageFormat(query.Get("format"))

	if raw := query.Get("after"); raw != "" {
		after, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("%w: after %q", ErrInvalidQuery, raw)
		}
		filter.EncodedAfter = &after
	}

	return filter, nil
}
