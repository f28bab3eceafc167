package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// CipherPolicy encrypts a plaintext into a self-contained blob and decrypts it
// again using only the blob and the password.
type CipherPolicy interface {
	// Name returns the configuration name of the policy ("aead" or "xor").
	Name() string

	// Label returns a human-readable description used in artifact metadata.
	Label() string

	// Authenticated reports whether Decrypt detects tampering and wrong
	// passwords.
	Authenticated() bool

	// Encrypt returns the blob for plaintext under password. Every call must
	// produce fresh randomness where the policy uses any.
	Encrypt(plaintext []byte, password string) ([]byte, error)

	// Decrypt reverses Encrypt.
	Decrypt(blob []byte, password string) ([]byte, error)
}

// KeyDeriver derives a fixed-size symmetric key from a password and salt.
type KeyDeriver interface {
	// Name returns the configuration name of the KDF.
	Name() string

	// DeriveKey returns a KeySize-byte key. It is deterministic for the same
	// password and salt.
	DeriveKey(password string, salt []byte) []byte
}
