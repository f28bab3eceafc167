package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/crypto"
	"github.com/MKhiriev/fractal-cipher/internal/imageio"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/lsb"
	"github.com/MKhiriev/fractal-cipher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposer_ComposeAndDecode(t *testing.T) {
	renderer := &recordingRenderer{}
	c := NewComposer(newFastStego(), renderer, testAppConfig(), logger.Nop()).(*composer)
	c.ids = fixedIDs(fixedID)
	c.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	artifact, data, err := c.Compose(ctx, models.EncodeRequest{Text: "no storage", Password: "pw", Width: 40, Height: 30})
	require.NoError(t, err)
	assert.Equal(t, fixedID, artifact.ID)
	assert.Equal(t, 10, artifact.Length)
	assert.Equal(t, models.FormatPNG, artifact.Format)
	assert.Equal(t, 40, renderer.width)
	assert.Equal(t, 30, renderer.height)

	resp, err := c.Decode(ctx, models.DecodeRequest{Image: data, Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "no storage", resp.Text)

	_, err = c.Decode(ctx, models.DecodeRequest{Image: data, Password: "wrong"})
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.ErrorIs(t, err, ErrDecodeFailed)
}

func TestComposer_TrimsTextAndPassword(t *testing.T) {
	c := NewComposer(newFastStego(), &recordingRenderer{}, testAppConfig(), logger.Nop())
	ctx := context.Background()

	artifact, data, err := c.Compose(ctx, models.EncodeRequest{Text: "  padded \n", Password: "pw ", Width: 40, Height: 30})
	require.NoError(t, err)
	assert.Equal(t, 6, artifact.Length)

	tests := []struct {
		name     string
		password string
	}{
		{name: "trimmed password", password: "pw"},
		{name: "password with spaces", password: "\tpw  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.Decode(ctx, models.DecodeRequest{Image: data, Password: tt.password})
			require.NoError(t, err)
			assert.Equal(t, "padded", resp.Text)
			assert.Equal(t, 6, resp.Length)
		})
	}
}

func TestComposer_DecodeTruncatedImage(t *testing.T) {
	c := NewComposer(newFastStego(), &recordingRenderer{}, testAppConfig(), logger.Nop())
	ctx := context.Background()

	_, data, err := c.Compose(ctx, models.EncodeRequest{Text: "cut", Password: "pw", Width: 40, Height: 30})
	require.NoError(t, err)

	// PNG signature plus the IHDR length, nothing else
	_, err = c.Decode(ctx, models.DecodeRequest{Image: data[:12], Password: "pw"})
	assert.ErrorIs(t, err, imageio.ErrCorruptImage)
}

// blockingKDF stalls key derivation until release is closed.
type blockingKDF struct {
	release chan struct{}
}

func (blockingKDF) Name() string { return "blocking" }

func (k blockingKDF) DeriveKey(password string, salt []byte) []byte {
	<-k.release
	return fastKDF{}.DeriveKey(password, salt)
}

func TestComposer_CancelDuringKeyDerivation(t *testing.T) {
	ctx := context.Background()
	_, encoded, err := NewComposer(newFastStego(), &recordingRenderer{}, testAppConfig(), logger.Nop()).
		Compose(ctx, models.EncodeRequest{Text: "slow", Password: "pw", Width: 40, Height: 30})
	require.NoError(t, err)

	kdf := blockingKDF{release: make(chan struct{})}
	defer close(kdf.release)
	stego := NewStegoService(crypto.NewAuthenticatedAEAD(kdf), logger.Nop())
	c := NewComposer(stego, &recordingRenderer{}, testAppConfig(), logger.Nop())

	tests := []struct {
		name string
		run  func(ctx context.Context) error
	}{
		{
			name: "compose",
			run: func(ctx context.Context) error {
				_, _, err := c.Compose(ctx, models.EncodeRequest{Text: "slow", Password: "pw", Width: 40, Height: 30})
				return err
			},
		},
		{
			name: "decode",
			run: func(ctx context.Context) error {
				_, err := c.Decode(ctx, models.DecodeRequest{Image: encoded, Password: "pw"})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
			defer cancel()

			errCh := make(chan error, 1)
			go func() { errCh <- tt.run(ctx) }()

			select {
			case err := <-errCh:
				assert.ErrorIs(t, err, context.DeadlineExceeded)
			case <-time.After(2 * time.Second):
				t.Fatal("composer kept waiting for key derivation")
			}
		})
	}
}

func TestComposer_TooLongForCanvas(t *testing.T) {
	c := NewComposer(newFastStego(), &recordingRenderer{}, testAppConfig(), logger.Nop())

	_, data, err := c.Compose(context.Background(), models.EncodeRequest{Text: "hi", Password: "pw", Width: 10, Height: 10})

	assert.ErrorIs(t, err, lsb.ErrCapacityExceeded)
	assert.ErrorIs(t, err, ErrEncodeFailed)
	assert.Nil(t, data)
}
