// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package imageio moves pixel buffers in and out of lossless image
// containers (PNG and BMP). Pixels are kept non-premultiplied so that every
// channel LSB survives a save/load cycle bit-exact. Lossy formats are
// rejected.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/MKhiriev/fractal-cipher/models"
)

// MaxPixels bounds the dimensions accepted by Decode.
const MaxPixels = 64 << 20

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrImageTooLarge     = errors.New("image too large")
	ErrCorruptImage      = errors.New("corrupted image")
)

// Decode reads a PNG or BMP image and returns its pixels and container format.
func Decode(data []byte) (models.PixelBuffer, models.ImageFormat, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return models.PixelBuffer{}, "", classifyDecodeError(err)
	}

	format := models.ImageFormat(name)
	if !format.Valid() {
		return models.PixelBuffer{}, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxPixels {
		return models.PixelBuffer{}, "", fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return models.PixelBuffer{}, "", classifyDecodeError(err)
	}

	return FromImage(img), format, nil
}

// Encode writes buf to w in the given container format.
func Encode(w io.Writer, buf models.PixelBuffer, format models.ImageFormat) error {
	img := ToImage(buf)

	switch format {
	case models.FormatPNG, "":
		return png.Encode(w, img)
	case models.FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// EncodeBytes is Encode into a new byte slice.
func EncodeBytes(buf models.PixelBuffer, format models.ImageFormat) ([]byte, error) {
	var out bytes.Buffer
	if err := Encode(&out, buf, format); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Load reads and decodes the image file at path.
func Load(path string) (models.PixelBuffer, models.ImageFormat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.PixelBuffer{}, "", fmt.Errorf("read image: %w", err)
	}
	return Decode(data)
}

// Save encodes buf into the file at path. The container is picked from the
// file extension; anything other than .bmp is written as PNG.
func Save(path string, buf models.PixelBuffer) error {
	data, err := EncodeBytes(buf, FormatFromPath(path))
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

// FormatFromPath maps a file extension to a container format.
func FormatFromPath(path string) models.ImageFormat {
	if strings.EqualFold(filepath.Ext(path), models.FormatBMP.Extension()) {
		return models.FormatBMP
	}
	return models.FormatPNG
}

// ToImage wraps buf as an *image.NRGBA without copying.
func ToImage(buf models.PixelBuffer) *image.NRGBA {
	return &image.NRGBA{
		Pix:    buf.Pix,
		Stride: buf.Width * 4,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
}

// FromImage copies img into a new non-premultiplied pixel buffer.
func FromImage(img image.Image) models.PixelBuffer {
	b := img.Bounds()
	buf := models.NewPixelBuffer(b.Dx(), b.Dy())
	rowLen := b.Dx() * 4

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < b.Dy(); y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(buf.Pix[y*rowLen:(y+1)*rowLen], src.Pix[off:off+rowLen])
		}
		return buf
	case *image.RGBA:
		// premultiplied and non-premultiplied agree when every pixel is opaque
		if src.Opaque() {
			for y := 0; y < b.Dy(); y++ {
				off := src.PixOffset(b.Min.X, b.Min.Y+y)
				copy(buf.Pix[y*rowLen:(y+1)*rowLen], src.Pix[off:off+rowLen])
			}
			return buf
		}
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := y*rowLen + x*4
			buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2], buf.Pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return buf
}

func classifyDecodeError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("%w: only lossless png and bmp are accepted", ErrUnsupportedFormat)
	}
	return fmt.Errorf("%w: %w", ErrCorruptImage, err)
}
