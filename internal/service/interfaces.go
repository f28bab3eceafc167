package service

import (
	"context"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/crypto"
	"github.com/MKhiriev/fractal-cipher/models"
)

// StegoService hides text in the LSBs of a pixel buffer and recovers it.
type StegoService interface {
	// Encode encrypts plaintext with password, frames the blob and embeds it
	// into a copy of carrier. The carrier itself is never modified.
	Encode(ctx context.Context, plaintext, password string, carrier models.PixelBuffer) (models.PixelBuffer, error)

	// Decode extracts the framed blob from carrier and decrypts it.
	Decode(ctx context.Context, carrier models.PixelBuffer, password string) (string, error)

	// EncodeAsync runs Encode on its own goroutine. The channel receives
	// exactly one Result and is then closed.
	EncodeAsync(ctx context.Context, plaintext, password string, carrier models.PixelBuffer) <-chan Result[models.PixelBuffer]

	// DecodeAsync runs Decode on its own goroutine.
	DecodeAsync(ctx context.Context, carrier models.PixelBuffer, password string) <-chan Result[string]

	// Policy returns the cipher policy the service was built with.
	Policy() crypto.CipherPolicy
}

// Composer renders a carrier, hides a message in it and recovers messages
// from uploaded images. Nothing is stored.
type Composer interface {
	Compose(ctx context.Context, req models.EncodeRequest) (models.Artifact, []byte, error)
	Decode(ctx context.Context, req models.DecodeRequest) (models.DecodeResponse, error)
}

// ArtifactService renders carriers, hides messages in them and keeps the
// resulting images with their metadata.
type ArtifactService interface {
	Create(ctx context.Context, req models.EncodeRequest) (models.Artifact, error)
	Decode(ctx context.Context, req models.DecodeRequest) (models.DecodeResponse, error)
	Get(ctx context.Context, id string) (models.Artifact, error)
	Open(ctx context.Context, id string) (models.Artifact, []byte, error)
	List(ctx context.Context, filter models.ArtifactFilter) ([]models.Artifact, error)
	Purge(ctx context.Context, olderThan time.Duration) (int, error)
}

// AppInfoService describes the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetServerInfo(ctx context.Context) models.ServerInfo
}

// FractalRenderer produces the carrier image for a seed in [0,1].
type FractalRenderer interface {
	Render(ctx context.Context, width, height int, seed float64) (models.PixelBuffer, error)
}
