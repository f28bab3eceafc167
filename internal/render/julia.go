// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/fractal-cipher/models"
)

const (
	maxIter      = 400
	escapeRadius = 16.0 // |z|^2
	bandRows     = 16
	twoPi        = 6.28318
)

var ErrInvalidSize = errors.New("invalid image size")

// JuliaRenderer renders Julia-set images in parallel row bands.
type JuliaRenderer struct {
	workers int
}

// NewJuliaRenderer returns a renderer using up to workers goroutines.
// A non-positive value means runtime.GOMAXPROCS(0).
func NewJuliaRenderer(workers int) *JuliaRenderer {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &JuliaRenderer{workers: workers}
}

// Render draws the still frame (time zero) for seed.
func (r *JuliaRenderer) Render(ctx context.Context, width, height int, seed float64) (models.PixelBuffer, error) {
	return r.RenderAt(ctx, width, height, seed, 0)
}

// RenderAt draws the frame at animation time t seconds. The result is fully
// opaque. It stops early with ctx.Err() when ctx is cancelled.
func (r *JuliaRenderer) RenderAt(ctx context.Context, width, height int, seed, t float64) (models.PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return models.PixelBuffer{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	buf := models.NewPixelBuffer(width, height)
	s := newScene(width, height, seed, t)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for top := 0; top < height; top += bandRows {
		bottom := min(top+bandRows, height)
		g.Go(func() error {
			for y := top; y < bottom; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.renderRow(buf.Pix[y*width*4:(y+1)*width*4], y)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return models.PixelBuffer{}, err
	}
	return buf, nil
}

// scene holds the per-frame constants shared by every pixel.
type scene struct {
	width, height float64
	seed          float64

	zoom     float64
	cos, sin float64 // camera rotation
	cx, cy   float64 // Julia constant
	hueShift float64
}

func newScene(width, height int, seed, t float64) scene {
	angle := 0.2 * math.Sin(t*0.15+seed*5)

	cx := math.Sin(seed*twoPi)*0.7 + 0.15*math.Sin(t*0.4+seed*10)
	cy := math.Cos(seed*twoPi)*0.7 + 0.15*math.Cos(t*0.6+seed*5)

	return scene{
		width:    float64(width),
		height:   float64(height),
		seed:     seed,
		zoom:     1.4 + 0.25*math.Sin(t*0.2+seed*10),
		cos:      math.Cos(angle),
		sin:      math.Sin(angle),
		cx:       cx + 0.10*math.Sin(t*0.27+seed*3),
		cy:       cy + 0.10*math.Cos(t*0.19+seed*7),
		hueShift: 0.15 * math.Sin(seed*20),
	}
}

// renderRow fills one image row. Row 0 is the top of the picture, so the
// fragment y coordinate counts from the bottom.
func (s scene) renderRow(row []byte, y int) {
	fy := s.height - float64(y) - 0.5
	for x := 0; x < len(row)/4; x++ {
		r, g, b := s.shade(float64(x)+0.5, fy)
		row[x*4] = toByte(r)
		row[x*4+1] = toByte(g)
		row[x*4+2] = toByte(b)
		row[x*4+3] = 0xFF
	}
}

// shade returns the colour of the fragment at (fx, fy), both measured in
// pixels from the bottom-left corner.
func (s scene) shade(fx, fy float64) (float64, float64, float64) {
	ux := (fx - 0.5*s.width) / s.height * s.zoom
	uy := (fy - 0.5*s.height) / s.height * s.zoom

	zx := ux*s.cos - uy*s.sin
	zy := ux*s.sin + uy*s.cos

	escaped := -1
	for i := 0; i < maxIter; i++ {
		zx, zy = zx*zx-zy*zy+s.cx, 2*zx*zy+s.cy
		if zx*zx+zy*zy > escapeRadius {
			escaped = i
			break
		}
	}

	mu := 1.0
	if escaped >= 0 {
		r := math.Hypot(zx, zy)
		mu = float64(escaped) + 1 - math.Log(math.Log(r))/math.Ln2
		mu = clamp(mu/maxIter, 0, 1)
	}

	hue := fract(math.Atan2(zy, zx)/(2*math.Pi) + 1 + s.hueShift)
	edge := math.Exp(-3 * math.Abs(math.Log(math.Hypot(zx, zy))))

	br, bg, bb := turbo(math.Pow(mu, 0.8))
	nr, ng, nb := hsvToRGB(hue*360, 0.85, 0.7+0.4*edge)

	r := mix(br, nr, 0.55)
	g := mix(bg, ng, 0.55)
	b := mix(bb, nb, 0.55)

	ndcX := fx/s.width*2 - 1
	ndcY := fy/s.height*2 - 1
	vignette := clamp(1-0.25*(ndcX*ndcX+ndcY*ndcY), 0.65, 1)
	r, g, b = r*vignette, g*vignette, b*vignette

	if (r+g+b)/3 > 0.75 {
		r, g, b = r*1.1, g*1.1, b*1.1
	}

	return r, g, b
}
