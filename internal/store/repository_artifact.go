package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/models"
)

// artifactRepository is the SQL implementation of [ArtifactRepository] over
// the "artifacts" table. It works with both sqlite3 and pgx; the placeholder
// style comes from the [DB].
type artifactRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewArtifactRepository(db *DB, logger *logger.Logger) ArtifactRepository {
	logger.Debug().Msg("creating artifact repository")
	return &artifactRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts a single artifact row.
//
// Error handling:
//   - unique or primary key violation → [ErrArtifactAlreadyExists].
//   - zero affected rows → [ErrArtifactNotSaved].
//   - busy/locked or transient connection errors are retried.
func (r *artifactRepository) Save(ctx context.Context, artifact models.Artifact) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertArtifactQuery(r.db.Placeholder(), artifact)
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.Save").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.Save").Str("id", artifact.ID).Msg("error inserting artifact")
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrArtifactAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrArtifactNotSaved
	}

	return nil
}

func (r *artifactRepository) Get(ctx context.Context, id string) (models.Artifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectArtifactQuery(r.db.Placeholder(), id)
	if err != nil {
		return models.Artifact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	artifact, err := scanArtifact(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artifact{}, ErrArtifactNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.Get").Str("id", id).Msg("error scanning artifact")
		return models.Artifact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return artifact, nil
}

func (r *artifactRepository) List(ctx context.Context, filter models.ArtifactFilter) ([]models.Artifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListArtifactsQuery(r.db.Placeholder(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.List").Msg("error listing artifacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanArtifacts(rows)
}

func (r *artifactRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) ([]models.Artifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteArtifactsOlderThanQuery(r.db.Placeholder(), cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted []models.Artifact
	err = r.db.withRetry(ctx, func() error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		deleted, queryErr = scanArtifacts(rows)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.DeleteOlderThan").Msg("error deleting artifacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArtifact(row rowScanner) (models.Artifact, error) {
	var (
		a      models.Artifact
		format string
	)

	if err := row.Scan(&a.ID, &a.Status, &a.Length, &a.Seed, &a.Encryption, &a.Width, &a.Height, &format, &a.EncodedAt); err != nil {
		return models.Artifact{}, err
	}
	a.Format = models.ImageFormat(format)
	a.EncodedAt = a.EncodedAt.UTC()

	return a, nil
}

func scanArtifacts(rows *sql.Rows) ([]models.Artifact, error) {
	artifacts := make([]models.Artifact, 0)
	for rows.Next() {
		a, err := scanArtifact(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		artifacts = append(artifacts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return artifacts, nil
}
