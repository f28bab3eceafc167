// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "unicode/utf16"

// SeedFromString maps s to a fractal seed in [0, 1].
//
// The hash runs h = h*31 + u (mod 2^32) over the UTF-16 code units of s and
// divides the result by 0xFFFFFFFF. It only picks a picture; it has no
// cryptographic role.
func SeedFromString(s string) float64 {
	var h uint32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + uint32(u)
	}
	return float64(h) / 0xFFFFFFFF
}
