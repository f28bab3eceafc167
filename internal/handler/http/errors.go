// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrIntegrityCheckFailed is returned when the HashSHA256 header of a
	// request does not match the HMAC of its body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrMissingImagePart is returned when a decode request has no "image"
	// part in its multipart form.
	ErrMissingImagePart = errors.New("missing image part")

	// ErrInvalidQuery is returned when a list query parameter cannot be
	// parsed.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrInvalidGzipBody is returned when a request claims gzip encoding but
	// its body is not a gzip stream.
	ErrInvalidGzipBody = errors.New("invalid gzip body")
)
