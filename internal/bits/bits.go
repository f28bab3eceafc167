// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bits converts between byte sequences and bit sequences.
//
// A bit sequence is a []byte in which every element holds a single bit (0 or
// 1). Bits are laid out most-significant bit first within each byte, which is
// the order in which they are written into pixel channels by package lsb.
package bits

// BytesToBits expands data into exactly 8*len(data) bits, MSB first.
func BytesToBits(data []byte) []byte {
	out := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			out = append(out, (b>>uint(i))&1)
		}
	}
	return out
}

// BitsToBytes packs bits back into ceil(len(bits)/8) bytes. A trailing group
// shorter than eight bits is zero-padded on its low-order side. Any non-zero
// element is treated as a set bit.
func BitsToBytes(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// Concat joins buffers into a freshly allocated slice.
func Concat(buffers ...[]byte) []byte {
	total := 0
	for _, b := range buffers {
		total += len(b)
	}

	out := make([]byte, 0, total)
	for _, b := range buffers {
		out = append(out, b...)
	}
	return out
}
