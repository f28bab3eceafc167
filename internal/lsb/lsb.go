// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lsb hides bits in the least significant bit of the R, G and B
// channels of an RGBA pixel buffer. Alpha is never read or written.
//
// Bits are laid out from pixel 0 onwards, three per pixel in R, G, B order,
// so a pixel buffer of n bytes carries floor(n/4)*3 bits.
package lsb

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/fractal-cipher/internal/bits"
	"github.com/MKhiriev/fractal-cipher/internal/frame"
	"github.com/MKhiriev/fractal-cipher/models"
)

const channelsPerPixel = 3

var (
	ErrCapacityExceeded   = errors.New("message too long for this image size")
	ErrInvalidPixelBuffer = errors.New("invalid pixel buffer")
)

// Capacity returns how many bits a pixel buffer of pixLen bytes can carry.
func Capacity(pixLen int) int {
	if pixLen < 0 {
		return 0
	}
	return (pixLen / 4) * channelsPerPixel
}

// Validate checks that buf is a well-formed RGBA buffer.
func Validate(buf models.PixelBuffer) error {
	if buf.Width < 0 || buf.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidPixelBuffer, buf.Width, buf.Height)
	}
	if want := buf.Width * buf.Height * 4; len(buf.Pix) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrInvalidPixelBuffer, buf.Width, buf.Height, want, len(buf.Pix))
	}
	return nil
}

// Embed writes payloadBits into a copy of buf and returns it. buf itself is
// never modified. Channels past the last bit keep their original values.
func Embed(buf models.PixelBuffer, payloadBits []byte) (models.PixelBuffer, error) {
	if err := Validate(buf); err != nil {
		return models.PixelBuffer{}, err
	}

	if capacity := Capacity(len(buf.Pix)); len(payloadBits) > capacity {
		return models.PixelBuffer{}, fmt.Errorf("%w: need %d bits, image holds %d", ErrCapacityExceeded, len(payloadBits), capacity)
	}

	out := buf.Clone()

	bit := 0
	for i := 0; i+3 < len(out.Pix) && bit < len(payloadBits); i += 4 {
		for c := 0; c < channelsPerPixel && bit < len(payloadBits); c++ {
			out.Pix[i+c] = out.Pix[i+c]&0xFE | payloadBits[bit]&1
			bit++
		}
	}

	return out, nil
}

// Extract reads every LSB of buf in embedding order.
func Extract(buf models.PixelBuffer) ([]byte, error) {
	if err := Validate(buf); err != nil {
		return nil, err
	}
	return readBits(buf.Pix, 0, Capacity(len(buf.Pix))), nil
}

// ExtractFramed reads the 32-bit length header, validates it and then reads
// only as many bits as the header announces. It returns the blob without
// the header.
func ExtractFramed(buf models.PixelBuffer) ([]byte, error) {
	if err := Validate(buf); err != nil {
		return nil, err
	}

	capacity := Capacity(len(buf.Pix))
	if capacity < frame.HeaderBits {
		return nil, fmt.Errorf("%w: image holds %d bits, header needs %d", frame.ErrInvalidOrMissingMessage, capacity, frame.HeaderBits)
	}

	header := bits.BitsToBytes(readBits(buf.Pix, 0, frame.HeaderBits))
	length, err := frame.DeclaredLength(header)
	if err != nil {
		return nil, err
	}

	if need := frame.HeaderBits + length*8; need > capacity {
		return nil, fmt.Errorf("%w: declared %d bytes, image holds %d bits", frame.ErrTruncatedMessage, length, capacity)
	}

	return bits.BitsToBytes(readBits(buf.Pix, frame.HeaderBits, length*8)), nil
}

// readBits returns count LSBs starting at bit offset from.
func readBits(pix []byte, from, count int) []byte {
	out := make([]byte, count)
	for n := 0; n < count; n++ {
		bit := from + n
		out[n] = pix[(bit/channelsPerPixel)*4+bit%channelsPerPixel] & 1
	}
	return out
}
