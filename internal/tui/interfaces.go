package tui

import (
	"context"

	"github.com/MKhiriev/fractal-cipher/models"
)

// Codec is the backend the screens encode and decode with. It runs either
// in-process or against a server.
type Codec interface {
	// Encode renders a carrier, hides req.Text in it and returns the
	// metadata with the encoded image bytes.
	Encode(ctx context.Context, req models.EncodeRequest) (models.Artifact, []byte, error)

	// Decode recovers the text hidden in image.
	Decode(ctx context.Context, image []byte, password string) (models.DecodeResponse, error)

	// History lists recently encoded artifacts, newest first.
	History(ctx context.Context) ([]models.Artifact, error)

	// Mode describes the backend for the status line.
	Mode() string
}
