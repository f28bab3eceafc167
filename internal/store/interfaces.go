package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/fractal-cipher/models"
)

// ArtifactRepository keeps artifact metadata in a relational database.
type ArtifactRepository interface {
	Save(ctx context.Context, artifact models.Artifact) error
	Get(ctx context.Context, id string) (models.Artifact, error)
	List(ctx context.Context, filter models.ArtifactFilter) ([]models.Artifact, error)

	// DeleteOlderThan removes every artifact encoded before cutoff and
	// returns the removed rows so their images can be deleted as well.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]models.Artifact, error)
}

// ArtifactFileStorage keeps encoded carrier images, one file per artifact.
type ArtifactFileStorage interface {
	Save(ctx context.Context, id string, format models.ImageFormat, data []byte) error
	Open(ctx context.Context, id string, format models.ImageFormat) ([]byte, error)

	// Delete removes the image. Deleting a missing image is not an error.
	Delete(ctx context.Context, id string, format models.ImageFormat) error
}

// ErrorClassificator decides whether a failed database call is worth
// repeating and recognises driver-specific constraint errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
