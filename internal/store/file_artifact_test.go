// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "01923f6e-8b1c-7a3e-9f10-2b4c6d8e0f12"

func newTestFileStorage(t *testing.T) (ArtifactFileStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "artifacts")

	fs, err := NewArtifactFileStorage(dir, logger.Nop())
	require.NoError(t, err)
	return fs, dir
}

func TestNewArtifactFileStorage_CreatesDirectory(t *testing.T) {
	_, dir := newTestFileStorage(t)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestArtifactFileStorage_SaveOpenDelete(t *testing.T) {
	fs, dir := newTestFileStorage(t)
	ctx := context.Background()
	data := []byte("\x89PNG fake image bytes")

	require.NoError(t, fs.Save(ctx, testID, models.FormatPNG, data))
	assert.FileExists(t, filepath.Join(dir, testID+".png"))

	got, err := fs.Open(ctx, testID, models.FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, fs.Delete(ctx, testID, models.FormatPNG))
	_, err = fs.Open(ctx, testID, models.FormatPNG)
	assert.ErrorIs(t, err, ErrArtifactNotFound)

	// second delete is a no-op
	assert.NoError(t, fs.Delete(ctx, testID, models.FormatPNG))
}

func TestArtifactFileStorage_SaveLeavesNoTempFiles(t *testing.T) {
	fs, dir := newTestFileStorage(t)

	require.NoError(t, fs.Save(context.Background(), testID, models.FormatBMP, []byte("BM")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, testID+".bmp", entries[0].Name())
}

func TestArtifactFileStorage_OpenWrongFormat(t *testing.T) {
	fs, _ := newTestFileStorage(t)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, testID, models.FormatPNG, []byte("x")))

	_, err := fs.Open(ctx, testID, models.FormatBMP)
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestArtifactFileStorage_RejectsBadIDs(t *testing.T) {
	fs, _ := newTestFileStorage(t)
	ctx := context.Background()

	for _, id := range []string{"", "../../etc/passwd", "not-a-uuid"} {
		t.Run(id, func(t *testing.T) {
			assert.ErrorIs(t, fs.Save(ctx, id, models.FormatPNG, []byte("x")), ErrInvalidArtifactID)
			_, err := fs.Open(ctx, id, models.FormatPNG)
			assert.ErrorIs(t, err, ErrInvalidArtifactID)
			assert.ErrorIs(t, fs.Delete(ctx, id, models.FormatPNG), ErrInvalidArtifactID)
		})
	}
}

func TestArtifactFileStorage_RejectsBadFormat(t *testing.T) {
	fs, _ := newTestFileStorage(t)

	err := fs.Save(context.Background(), testID, models.ImageFormat("jpeg"), []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidArtifactID)
}

func TestArtifactFileStorage_CancelledContext(t *testing.T) {
	fs, _ := newTestFileStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, fs.Save(ctx, testID, models.FormatPNG, []byte("x")), context.Canceled)
	_, err := fs.Open(ctx, testID, models.FormatPNG)
	assert.ErrorIs(t, err, context.Canceled)
}
