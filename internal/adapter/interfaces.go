// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the terminal client to talk
// to a fractal-cipher server.
//
// The primary abstraction is [ServerAdapter], which hides the REST API behind
// plain Go calls. The package ships an HTTP implementation built on resty
// ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] that
// wraps one of the sentinel errors in errors.go, so callers can use
// [errors.Is] (e.g. [ErrUnprocessable] for 422) and still show the server's
// own message.
package adapter

import (
	"context"

	"github.com/MKhiriev/fractal-cipher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client side of the HTTP API.
type ServerAdapter interface {
	// Encode asks the server to render a carrier and hide req.Text in it.
	// The returned artifact ID is used with DownloadImage.
	Encode(ctx context.Context, req models.EncodeRequest) (models.Artifact, error)

	// DownloadImage fetches the stored carrier bytes. When a hash key is
	// configured the HashSHA256 response header must match the body.
	DownloadImage(ctx context.Context, id string) ([]byte, error)

	// Decode uploads a carrier with its password and returns the recovered
	// text.
	Decode(ctx context.Context, image []byte, password string) (models.DecodeResponse, error)

	// ListImages returns stored artifact metadata, newest first.
	ListImages(ctx context.Context, filter models.ArtifactFilter) ([]models.Artifact, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Info returns the server version with its codec settings.
	Info(ctx context.Context) (models.ServerInfo, error)
}
