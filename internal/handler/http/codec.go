// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/service"
	"github.com/MKhiriev/fractal-cipher/internal/utils"
	"github.com/MKhiriev/fractal-cipher/models"
)

// multipart field names of POST /api/decode
const (
	imageFormField    = "image"
	passwordFormField = "password"
)

// multipartMemory is the part of a decode upload kept in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

// encode renders a carrier, hides the request text in it and answers with
// the artifact metadata. The image itself is fetched from the Location URL.
func (h *Handler) encode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if !errors.As(err, &maxBytesErr) {
			err = fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		}
		writeServiceError(w, r, err, "*Handler.encode")
		return
	}

	artifact, err := h.services.ArtifactService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.encode")
		return
	}

	log.Debug().Str("func", "*Handler.encode").Str("id", artifact.ID).Msg("message embedded")

	w.Header().Set("Location", "/api/images/"+artifact.ID)
	utils.WriteJSON(w, artifact, http.StatusCreated)
}

// decode reads a multipart form with an image and a password and answers
// with the recovered text.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) {
	req, err := readDecodeRequest(r)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.decode")
		return
	}

	resp, err := h.services.ArtifactService.Decode(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.decode")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func readDecodeRequest(r *http.Request) (models.DecodeRequest, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return models.DecodeRequest{}, err
		}
		return models.DecodeRequest{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile(imageFormField)
	if err != nil {
		return models.DecodeRequest{}, ErrMissingImagePart
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.DecodeRequest{}, fmt.Errorf("error reading image part: %w", err)
	}

	return models.DecodeRequest{
		Image:    data,
		Password: r.FormValue(passwordFormField),
	}, nil
}
