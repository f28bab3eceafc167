// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/fractal-cipher/internal/adapter"
	"github.com/MKhiriev/fractal-cipher/internal/app"
)

var (
	// errImageFile marks failures reading or writing an image on disk. Its
	// text is shown as is.
	errImageFile = errors.New("image file")

	errCancelled = errors.New("cancelled")
)

// userMessage turns err into the line shown under a form. Server answers
// keep the server's wording; local failures use the shared app messages.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var respErr *adapter.ResponseError
	switch {
	case errors.As(err, &respErr):
		return respErr.Message
	case errors.Is(err, context.Canceled), errors.Is(err, errCancelled):
		return "Cancelled."
	case errors.Is(err, adapter.ErrServerUnavailable):
		return app.MsgServerUnavailable
	case errors.Is(err, adapter.ErrIntegrityCheckFailed):
		return app.MsgIntegrityCheckFailed
	case errors.Is(err, errImageFile):
		return err.Error()
	}
	return app.UserMessage(err)
}
