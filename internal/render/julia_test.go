package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Dimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{name: "square", width: 32, height: 32},
		{name: "wide", width: 40, height: 9},
		{name: "tall, not a multiple of a band", width: 7, height: 37},
		{name: "single pixel", width: 1, height: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewJuliaRenderer(4).Render(context.Background(), tt.width, tt.height, 0.42)
			require.NoError(t, err)
			assert.Equal(t, tt.width, buf.Width)
			assert.Equal(t, tt.height, buf.Height)
			assert.Len(t, buf.Pix, tt.width*tt.height*4)
		})
	}
}

func TestRender_Opaque(t *testing.T) {
	buf, err := NewJuliaRenderer(0).Render(context.Background(), 24, 24, 0.1)
	require.NoError(t, err)

	for i := 3; i < len(buf.Pix); i += 4 {
		require.Equal(t, byte(0xFF), buf.Pix[i], "pixel %d is not opaque", i/4)
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	ctx := context.Background()

	single, err := NewJuliaRenderer(1).Render(ctx, 48, 40, 0.77)
	require.NoError(t, err)
	parallel, err := NewJuliaRenderer(8).Render(ctx, 48, 40, 0.77)
	require.NoError(t, err)

	assert.Equal(t, single.Pix, parallel.Pix)
}

func TestRender_SeedAndTimeChangeThePicture(t *testing.T) {
	ctx := context.Background()
	r := NewJuliaRenderer(2)

	a, err := r.Render(ctx, 32, 32, 0.25)
	require.NoError(t, err)
	b, err := r.Render(ctx, 32, 32, 0.75)
	require.NoError(t, err)
	c, err := r.RenderAt(ctx, 32, 32, 0.25, 3.5)
	require.NoError(t, err)

	assert.NotEqual(t, a.Pix, b.Pix)
	assert.NotEqual(t, a.Pix, c.Pix)
}

func TestRender_InvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := NewJuliaRenderer(1).Render(context.Background(), size[0], size[1], 0.5)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestRender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf, err := NewJuliaRenderer(2).Render(ctx, 64, 64, 0.5)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, buf.Pix)
}

func TestColorHelpers(t *testing.T) {
	r, g, b := turbo(0)
	assert.InDelta(t, 0.13572138, r, 1e-9)
	assert.InDelta(t, 0.09140261, g, 1e-9)
	assert.InDelta(t, 0.1066733, b, 1e-9)

	r, g, b = hsvToRGB(0, 1, 1)
	assert.Equal(t, [3]float64{1, 0, 0}, [3]float64{r, g, b})
	r, g, b = hsvToRGB(120, 1, 1)
	assert.Equal(t, [3]float64{0, 1, 0}, [3]float64{r, g, b})
	r, g, b = hsvToRGB(240, 1, 1)
	assert.Equal(t, [3]float64{0, 0, 1}, [3]float64{r, g, b})

	assert.Equal(t, byte(0), toByte(-0.5))
	assert.Equal(t, byte(255), toByte(1.1))
	assert.Equal(t, byte(128), toByte(0.5))

	assert.InDelta(t, 0.25, fract(3.25), 1e-12)
	assert.InDelta(t, 1.0, glslMod(-1, 2), 1e-12)
}
