package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/utils"
	"github.com/MKhiriev/fractal-cipher/models"
)

// artifactFileStorage is the file-system implementation of
// [ArtifactFileStorage]. Images live flat in dir as "<id>.<format>".
type artifactFileStorage struct {
	dir string

	logger *logger.Logger
}

// NewArtifactFileStorage creates dir if needed and returns a storage
// rooted at it.
func NewArtifactFileStorage(dir string, logger *logger.Logger) (ArtifactFileStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating artifact directory: %w", err)
	}

	return &artifactFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save writes data to a temporary file and renames it into place, so a
// reader never sees a half-written image.
func (s *artifactFileStorage) Save(ctx context.Context, id string, format models.ImageFormat, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(id, format)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, id+"-*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("error writing image: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error closing image: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error moving image into place: %w", err)
	}

	s.logger.Debug().Str("func", "*artifactFileStorage.Save").Str("id", id).Int("bytes", len(data)).Msg("image saved")
	return nil
}

func (s *artifactFileStorage) Open(ctx context.Context, id string, format models.ImageFormat) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(id, format)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrArtifactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading image: %w", err)
	}

	return data, nil
}

func (s *artifactFileStorage) Delete(ctx context.Context, id string, format models.ImageFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(id, format)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting image: %w", err)
	}

	return nil
}

func (s *artifactFileStorage) path(id string, format models.ImageFormat) (string, error) {
	if !utils.IsValidID(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidArtifactID, id)
	}
	if !format.Valid() {
		return "", fmt.Errorf("%w: format %q", ErrInvalidArtifactID, format)
	}

	return filepath.Join(s.dir, id+format.Extension()), nil
}
