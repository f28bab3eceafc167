package client

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/fractal-cipher/internal/service"
	"github.com/MKhiriev/fractal-cipher/models"
)

// historyLimit caps the session history kept by the local codec.
const historyLimit = 50

// localCodec encodes and decodes in-process. Its history lives only as long
// as the client runs.
type localCodec struct {
	composer service.Composer

	mu      sync.Mutex
	history []models.Artifact
}

func newLocalCodec(composer service.Composer) *localCodec {
	return &localCodec{composer: composer}
}

func (c *localCodec) Encode(ctx context.Context, req models.EncodeRequest) (models.Artifact, []byte, error) {
	artifact, data, err := c.composer.Compose(ctx, req)
	if err != nil {
		return models.Artifact{}, nil, err
	}

	c.mu.Lock()
	c.history = append([]models.Artifact{artifact}, c.history...)
	if len(c.history) > historyLimit {
		c.history = c.history[:historyLimit]
	}
	c.mu.Unlock()

	return artifact, data, nil
}

func (c *localCodec) Decode(ctx context.Context, image []byte, password string) (models.DecodeResponse, error) {
	return c.composer.Decode(ctx, models.DecodeRequest{Image: image, Password: password})
}

// History returns the artifacts encoded in this session, newest first.
func (c *localCodec) History(context.Context) ([]models.Artifact, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.history), nil
}

func (c *localCodec) Mode() string {
	return "local"
}
