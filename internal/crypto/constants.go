package crypto

const (
	// SaltSize is the size of the random key-derivation salt in bytes.
	SaltSize = 16
	// NonceSize is the size of the AES-GCM nonce in bytes.
	NonceSize = 12
	// TagSize is the size of the AES-GCM authentication tag in bytes.
	TagSize = 16
	// KeySize is the size of the derived AES-256 key in bytes.
	KeySize = 32

	// MinAuthenticatedBlobSize is the shortest blob Decrypt will look at:
	// salt, nonce and at least one more byte.
	MinAuthenticatedBlobSize = SaltSize + NonceSize + 1

	// MinPBKDF2Iterations is the lowest PBKDF2 round count accepted.
	MinPBKDF2Iterations = 100_000
)

// Policy names as used in configuration.
const (
	PolicyAEAD = "aead"
	PolicyXOR  = "xor"
)

// KDF names as used in configuration.
const (
	KDFPBKDF2   = "pbkdf2"
	KDFArgon2id = "argon2id"
)
