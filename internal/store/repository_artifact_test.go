// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArtifactRepo(t *testing.T) (*artifactRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &artifactRepository{
		db: &DB{
			DB:                 db,
			driver:             DriverPostgres,
			placeholder:        sq.Dollar,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func artifactRows(artifacts ...models.Artifact) *sqlmock.Rows {
	rows := sqlmock.NewRows(artifactColumns)
	for _, a := range artifacts {
		rows.AddRow(a.ID, a.Status, a.Length, a.Seed, a.Encryption, a.Width, a.Height, string(a.Format), a.EncodedAt)
	}
	return rows
}

func TestArtifactRepository_Save(t *testing.T) {
	a := testArtifact()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO artifacts").
					WithArgs(a.ID, a.Status, a.Length, a.Seed, a.Encryption, a.Width, a.Height, "png", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unique violation",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO artifacts").
					WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrArtifactAlreadyExists,
		},
		{
			name: "no rows affected",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO artifacts").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrArtifactNotSaved,
		},
		{
			name: "retryable error then success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO artifacts").
					WillReturnError(pgError(pgerrcode.SerializationFailure))
				mock.ExpectExec("INSERT INTO artifacts").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "non-retryable error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO artifacts").
					WillReturnError(pgError(pgerrcode.SyntaxError))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestArtifactRepo(t)
			tt.setup(mock)

			err := repo.Save(context.Background(), a)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestArtifactRepository_Get(t *testing.T) {
	a := testArtifact()

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestArtifactRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM artifacts WHERE id = \\$1").
			WithArgs(a.ID).
			WillReturnRows(artifactRows(a))

		got, err := repo.Get(context.Background(), a.ID)
		require.NoError(t, err)
		assert.Equal(t, a, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestArtifactRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM artifacts").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrArtifactNotFound)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestArtifactRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM artifacts").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("x"))

		_, err := repo.Get(context.Background(), "x")
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestArtifactRepository_List(t *testing.T) {
	first := testArtifact()
	second := testArtifact()
	second.ID = "01923f6e-8b1c-7a3e-9f10-2b4c6d8e0f13"
	second.Format = models.FormatBMP

	t.Run("rows", func(t *testing.T) {
		repo, mock := newTestArtifactRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM artifacts ORDER BY encoded_at DESC").
			WillReturnRows(artifactRows(first, second))

		got, err := repo.List(context.Background(), models.ArtifactFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, models.FormatBMP, got[1].Format)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		repo, mock := newTestArtifactRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM artifacts").
			WillReturnRows(artifactRows())

		got, err := repo.List(context.Background(), models.ArtifactFilter{})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestArtifactRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM artifacts").
			WillReturnError(errors.New("boom"))

		_, err := repo.List(context.Background(), models.ArtifactFilter{})
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock := newTestArtifactRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM artifacts").
			WillReturnRows(artifactRows(first).RowError(0, errors.New("broken row")))

		_, err := repo.List(context.Background(), models.ArtifactFilter{})
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestArtifactRepository_DeleteOlderThan(t *testing.T) {
	a := testArtifact()
	cutoff := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

	t.Run("returns deleted rows", func(t *testing.T) {
		repo, mock := newTestArtifactRepo(t)
		mock.ExpectQuery("DELETE FROM artifacts WHERE encoded_at < \\$1 RETURNING").
			WithArgs(cutoff).
			WillReturnRows(artifactRows(a))

		got, err := repo.DeleteOlderThan(context.Background(), cutoff)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)
	})

	t.Run("error", func(t *testing.T) {
		repo, mock := newTestArtifactRepo(t)
		mock.ExpectQuery("DELETE FROM artifacts").
			WillReturnError(pgError(pgerrcode.UndefinedTable))

		_, err := repo.DeleteOlderThan(context.Background(), cutoff)
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}
