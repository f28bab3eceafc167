// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidPayload is returned when a blob is too short to contain the
	// salt, the nonce and any ciphertext.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrDecryptionFailed is returned when authenticated decryption fails.
	// It covers both a wrong password and corrupted ciphertext.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEmptyPassword is returned by the XOR policy, which cannot cycle an
	// empty key.
	ErrEmptyPassword = errors.New("empty password")

	// ErrUnknownPolicy is returned by [NewPolicy] for an unsupported policy
	// or KDF name.
	ErrUnknownPolicy = errors.New("unknown cipher policy")
)
