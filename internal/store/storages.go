package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
)

type Storages struct {
	ArtifactRepository  ArtifactRepository
	ArtifactFileStorage ArtifactFileStorage

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// prepares the artifact directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, errors.Join(err, db.Close())
	}

	files, err := NewArtifactFileStorage(cfg.Files.ArtifactDir, log)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &Storages{
		ArtifactRepository:  NewArtifactRepository(db, log),
		ArtifactFileStorage: files,
		db:                  db,
	}, nil
}

func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
