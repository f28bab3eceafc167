// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2KeyDeriver derives keys with PBKDF2-HMAC-SHA256.
type pbkdf2KeyDeriver struct {
	iterations int
}

// NewPBKDF2KeyDeriver returns a PBKDF2-HMAC-SHA256 [KeyDeriver]. Iteration
// counts below [MinPBKDF2Iterations] are raised to the minimum.
func NewPBKDF2KeyDeriver(iterations int) KeyDeriver {
	if iterations < MinPBKDF2Iterations {
		iterations = MinPBKDF2Iterations
	}
	return &pbkdf2KeyDeriver{iterations: iterations}
}

func (k *pbkdf2KeyDeriver) Name() string {
	return KDFPBKDF2
}

// DeriveKey implements [KeyDeriver].
func (k *pbkdf2KeyDeriver) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, k.iterations, KeySize, sha256.New)
}

// argon2idKeyDeriver derives keys with Argon2id.
type argon2idKeyDeriver struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewArgon2idKeyDeriver constructs an Argon2id [KeyDeriver] with the
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewArgon2idKeyDeriver() KeyDeriver {
	return &argon2idKeyDeriver{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

func (k *argon2idKeyDeriver) Name() string {
	return KDFArgon2id
}

// DeriveKey implements [KeyDeriver].
func (k *argon2idKeyDeriver) DeriveKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		KeySize,
	)
}
