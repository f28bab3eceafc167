// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fractal-cipher/internal/adapter"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/models"
)

// remoteCodec runs every operation on a server. Encode is two calls: the
// server keeps the image and the client downloads it right away.
type remoteCodec struct {
	adapter adapter.ServerAdapter
	address string

	// encryption is the server's cipher label, empty until known.
	encryption string

	logger *logger.Logger
}

func newRemoteCodec(serverAdapter adapter.ServerAdapter, address string, logger *logger.Logger) *remoteCodec {
	return &remoteCodec{adapter: serverAdapter, address: address, logger: logger}
}

func (c *remoteCodec) Encode(ctx context.Context, req models.EncodeRequest) (models.Artifact, []byte, error) {
	artifact, err := c.adapter.Encode(ctx, req)
	if err != nil {
		return models.Artifact{}, nil, err
	}

	data, err := c.adapter.DownloadImage(ctx, artifact.ID)
	if err != nil {
		c.logger.Err(err).Str("artifact_id", artifact.ID).Msg("encoded image download failed")
		return models.Artifact{}, nil, fmt.Errorf("error downloading image %s: %w", artifact.ID, err)
	}

	return artifact, data, nil
}

func (c *remoteCodec) Decode(ctx context.Context, image []byte, password string) (models.DecodeResponse, error) {
	return c.adapter.Decode(ctx, image, password)
}

// History lists the newest artifacts stored on the server.
func (c *remoteCodec) History(ctx context.Context) ([]models.Artifact, error) {
	return c.adapter.ListImages(ctx, models.ArtifactFilter{Limit: historyLimit})
}

func (c *remoteCodec) Mode() string {
	if c.encryption == "" {
		return "remote " + c.address
	}
	return "remote " + c.address + ", " + c.encryption
}
