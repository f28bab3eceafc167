package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fractal-cipher/models"
)

const (
	artifactsTable = "artifacts"

	defaultListLimit uint64 = 100
	maxListLimit     uint64 = 1000
)

var artifactColumns = []string{
	"id",
	"status",
	"length",
	"seed",
	"encryption",
	"width",
	"height",
	"format",
	"encoded_at",
}

func buildInsertArtifactQuery(ph sq.PlaceholderFormat, a models.Artifact) (string, []any, error) {
	return sq.Insert(artifactsTable).
		Columns(artifactColumns...).
		Values(a.ID, a.Status, a.Length, a.Seed, a.Encryption, a.Width, a.Height, string(a.Format), a.EncodedAt.UTC()).
		PlaceholderFormat(ph).
		ToSql()
}

func buildSelectArtifactQuery(ph sq.PlaceholderFormat, id string) (string, []any, error) {
	return sq.Select(artifactColumns...).
		From(artifactsTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildListArtifactsQuery returns the newest artifacts first. A zero limit
// means defaultListLimit; larger limits are capped at maxListLimit.
func buildListArtifactsQuery(ph sq.PlaceholderFormat, filter models.ArtifactFilter) (string, []any, error) {
	query := sq.Select(artifactColumns...).
		From(artifactsTable).
		OrderBy("encoded_at DESC", "id DESC").
		PlaceholderFormat(ph)

	if filter.Format != "" {
		query = query.Where(sq.Eq{"format": string(filter.Format)})
	}
	if filter.EncodedAfter != nil {
		query = query.Where(sq.Gt{"encoded_at": filter.EncodedAfter.UTC()})
	}

	limit := filter.Limit
	switch {
	case limit == 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	return query.Limit(limit).ToSql()
}

func buildDeleteArtifactsOlderThanQuery(ph sq.PlaceholderFormat, cutoff time.Time) (string, []any, error) {
	return sq.Delete(artifactsTable).
		Where(sq.Lt{"encoded_at": cutoff.UTC()}).
		Suffix("RETURNING " + strings.Join(artifactColumns, ", ")).
		PlaceholderFormat(ph).
		ToSql()
}
