package client

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/crypto"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppConfig() config.App {
	return config.App{
		CipherPolicy:      crypto.PolicyAEAD,
		KDF:               crypto.KDFPBKDF2,
		KDFIterations:     100_000,
		DefaultWidth:      48,
		DefaultHeight:     48,
		DefaultSeedPhrase: "FractalBloom",
		RenderWorkers:     2,
	}
}

func TestLocalCodec_RoundTrip(t *testing.T) {
	composer, err := newLocalComposer(testAppConfig(), logger.Nop())
	require.NoError(t, err)
	codec := newLocalCodec(composer)

	artifact, data, err := codec.Encode(context.Background(), models.EncodeRequest{
		Text:     "Привет, fractal!",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, 16, artifact.Length)
	assert.Equal(t, 48, artifact.Width)
	assert.NotEmpty(t, data)

	resp, err := codec.Decode(context.Background(), data, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "Привет, fractal!", resp.Text)

	_, err = codec.Decode(context.Background(), data, "wrong")
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)

	history, err := codec.History(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, artifact, history[0])
	assert.Equal(t, "local", codec.Mode())
}

func TestLocalCodec_HistoryIsBounded(t *testing.T) {
	cfg := testAppConfig()
	cfg.CipherPolicy = crypto.PolicyXOR
	cfg.DefaultWidth, cfg.DefaultHeight = 16, 16

	composer, err := newLocalComposer(cfg, logger.Nop())
	require.NoError(t, err)
	codec := newLocalCodec(composer)

	for i := range historyLimit + 5 {
		_, _, err = codec.Encode(context.Background(), models.EncodeRequest{Text: fmt.Sprint(i), Password: "pw"})
		require.NoError(t, err)
	}

	history, err := codec.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, history, historyLimit)

	// returned slice is a copy
	history[0] = models.Artifact{}
	again, _ := codec.History(context.Background())
	assert.NotEqual(t, models.Artifact{}, again[0])
}

func TestNewLocalComposer_UnknownPolicy(t *testing.T) {
	cfg := testAppConfig()
	cfg.CipherPolicy = "rot13"

	_, err := newLocalComposer(cfg, logger.Nop())
	require.ErrorIs(t, err, crypto.ErrUnknownPolicy)

	_, err = NewApp(&config.ClientConfig{App: cfg}, models.AppBuildInfo{}, logger.Nop())
	require.ErrorIs(t, err, crypto.ErrUnknownPolicy)
}

func TestNewApp(t *testing.T) {
	local, err := NewApp(&config.ClientConfig{App: testAppConfig()}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, local.remote)

	remote, err := NewApp(&config.ClientConfig{
		App:     testAppConfig(),
		Adapter: config.Adapter{HTTPAddress: "localhost:8080"},
	}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, remote.remote)
}
