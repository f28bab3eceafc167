// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/store"
	"github.com/MKhiriev/fractal-cipher/models"
)

type artifactService struct {
	*composer

	artifactRepository  store.ArtifactRepository
	artifactFileStorage store.ArtifactFileStorage

	logger *logger.Logger
}

func NewArtifactService(stego StegoService, renderer FractalRenderer, storages *store.Storages, cfg config.App, logger *logger.Logger) ArtifactService {
	return &artifactService{
		composer:            newComposer(stego, renderer, cfg, logger),
		artifactRepository:  storages.ArtifactRepository,
		artifactFileStorage: storages.ArtifactFileStorage,
		logger:              logger,
	}
}

// Create composes an artifact and stores the image and its metadata. The
// image is written first; if the metadata cannot be saved the image is
// removed again.
func (s *artifactService) Create(ctx context.Context, req models.EncodeRequest) (models.Artifact, error) {
	artifact, data, err := s.Compose(ctx, req)
	if err != nil {
		return models.Artifact{}, err
	}

	if err = s.artifactFileStorage.Save(ctx, artifact.ID, artifact.Format, data); err != nil {
		return models.Artifact{}, fmt.Errorf("error saving image: %w", err)
	}

	if err = s.artifactRepository.Save(ctx, artifact); err != nil {
		if delErr := s.artifactFileStorage.Delete(ctx, artifact.ID, artifact.Format); delErr != nil {
			s.logger.Err(delErr).Str("func", "*artifactService.Create").Str("id", artifact.ID).Msg("error removing orphaned image")
		}
		return models.Artifact{}, fmt.Errorf("error saving artifact: %w", err)
	}

	s.logger.Info().
		Str("func", "*artifactService.Create").
		Str("id", artifact.ID).
		Int("width", artifact.Width).
		Int("height", artifact.Height).
		Str("format", string(artifact.Format)).
		Msg("artifact created")

	return artifact, nil
}

func (s *artifactService) Get(ctx context.Context, id string) (models.Artifact, error) {
	return s.artifactRepository.Get(ctx, id)
}

// Open returns the artifact metadata together with the stored image bytes.
func (s *artifactService) Open(ctx context.Context, id string) (models.Artifact, []byte, error) {
	artifact, err := s.artifactRepository.Get(ctx, id)
	if err != nil {
		return models.Artifact{}, nil, err
	}

	data, err := s.artifactFileStorage.Open(ctx, artifact.ID, artifact.Format)
	if err != nil {
		return models.Artifact{}, nil, err
	}

	return artifact, data, nil
}

func (s *artifactService) List(ctx context.Context, filter models.ArtifactFilter) ([]models.Artifact, error) {
	if filter.Format != "" && !filter.Format.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationFormat)
	}
	return s.artifactRepository.List(ctx, filter)
}

// Purge removes artifacts encoded more than olderThan ago and returns how
// many were removed. A non-positive olderThan keeps everything.
func (s *artifactService) Purge(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, nil
	}

	deleted, err := s.artifactRepository.DeleteOlderThan(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("error purging artifacts: %w", err)
	}

	var errs []error
	for _, a := range deleted {
		if err = s.artifactFileStorage.Delete(ctx, a.ID, a.Format); err != nil {
			errs = append(errs, err)
		}
	}

	if len(deleted) > 0 {
		s.logger.Info().Str("func", "*artifactService.Purge").Int("count", len(deleted)).Msg("artifacts purged")
	}

	return len(deleted), errors.Join(errs...)
}
