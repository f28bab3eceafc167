// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// aeadPolicy is the authenticated [CipherPolicy]:
// salt(16) ‖ nonce(12) ‖ AES-256-GCM(ciphertext ‖ tag).
type aeadPolicy struct {
	kdf KeyDeriver

	// random is the source of salts and nonces; crypto/rand in production.
	random io.Reader
}

// NewAuthenticatedAEAD returns the authenticated [CipherPolicy] using kdf to
// turn the password into an AES-256 key. A nil kdf selects PBKDF2 with
// [MinPBKDF2Iterations] rounds.
func NewAuthenticatedAEAD(kdf KeyDeriver) CipherPolicy {
	if kdf == nil {
		kdf = NewPBKDF2KeyDeriver(MinPBKDF2Iterations)
	}
	return &aeadPolicy{kdf: kdf, random: rand.Reader}
}

func (p *aeadPolicy) Name() string {
	return PolicyAEAD
}

func (p *aeadPolicy) Label() string {
	return "AES-GCM + LSB steganography"
}

func (p *aeadPolicy) Authenticated() bool {
	return true
}

// Encrypt implements [CipherPolicy]. A fresh salt, and with it a fresh key,
// plus a fresh nonce are drawn on every call, so a (key, nonce) pair is
// never reused.
func (p *aeadPolicy) Encrypt(plaintext []byte, password string) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(p.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(p.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	gcm, err := p.newGCM(password, salt)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, SaltSize+NonceSize+len(plaintext)+TagSize)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)

	return gcm.Seal(blob, nonce, plaintext, nil), nil
}

// Decrypt implements [CipherPolicy]. Blobs shorter than
// [MinAuthenticatedBlobSize] fail with [ErrInvalidPayload]; every
// authentication failure is [ErrDecryptionFailed].
func (p *aeadPolicy) Decrypt(blob []byte, password string) ([]byte, error) {
	if len(blob) < MinAuthenticatedBlobSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrInvalidPayload, len(blob), MinAuthenticatedBlobSize)
	}

	salt := blob[:SaltSize]
	nonce := blob[SaltSize : SaltSize+NonceSize]
	ciphertext := blob[SaltSize+NonceSize:]

	gcm, err := p.newGCM(password, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func (p *aeadPolicy) newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key := p.kdf.DeriveKey(password, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
