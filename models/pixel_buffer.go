// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PixelBuffer is a flat RGBA image: four bytes per pixel, row-major,
// non-premultiplied. It is the carrier the codec hides data in.
type PixelBuffer struct {
	// Width is the image width in pixels.
	Width int

	// Height is the image height in pixels.
	Height int

	// Pix holds Width*Height*4 bytes in R, G, B, A order.
	Pix []byte
}

// NewPixelBuffer allocates a zeroed buffer of the given dimensions.
func NewPixelBuffer(width, height int) PixelBuffer {
	return PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Clone returns a deep copy of b.
func (b PixelBuffer) Clone() PixelBuffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return PixelBuffer{Width: b.Width, Height: b.Height, Pix: pix}
}
