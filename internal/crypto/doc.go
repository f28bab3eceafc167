// Package crypto turns a plaintext message and a password into an opaque
// cipher blob and back.
//
// # Policies
//
// A [CipherPolicy] owns the blob format. Two policies exist:
//
//   - [NewAuthenticatedAEAD] (name "aead"): a 256-bit key is derived from the
//     password and a fresh 16-byte salt by a [KeyDeriver], then the message is
//     sealed with AES-256-GCM under a fresh 12-byte nonce. The blob is
//     salt ‖ nonce ‖ ciphertext ‖ tag and carries everything decryption needs
//     besides the password.
//
//   - [NewXorStream] (name "xor"): the message is XORed with the password
//     bytes repeated cyclically. The blob has the same length as the message.
//     It offers no integrity at all: a wrong password or flipped bits decrypt
//     to garbage instead of failing. It is a lightweight fallback only and is
//     never selected by default.
//
// The two blob formats cannot be told apart from the bytes alone, so the
// decoder has to be configured with the same policy the encoder used.
//
// # Key derivation
//
// [NewPBKDF2KeyDeriver] (PBKDF2-HMAC-SHA256, at least [MinPBKDF2Iterations]
// rounds) is the default. [NewArgon2idKeyDeriver] is available for
// deployments that prefer a memory-hard function. Both are pure functions of
// password and salt.
//
// Authentication failures are reported as the single [ErrDecryptionFailed];
// GCM cannot tell a wrong password from corrupted bytes.
package crypto
