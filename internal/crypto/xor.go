package crypto

// xorPolicy is the unauthenticated repeating-key XOR [CipherPolicy].
type xorPolicy struct{}

// NewXorStream returns the XOR [CipherPolicy]. It provides no integrity and
// exists only as an explicitly selected lightweight fallback.
func NewXorStream() CipherPolicy {
	return xorPolicy{}
}

func (xorPolicy) Name() string {
	return PolicyXOR
}

func (xorPolicy) Label() string {
	return "XOR (unauthenticated) + LSB steganography"
}

func (xorPolicy) Authenticated() bool {
	return false
}

// Encrypt implements [CipherPolicy].
func (xorPolicy) Encrypt(plaintext []byte, password string) ([]byte, error) {
	return xorWithKey(plaintext, []byte(password))
}

// Decrypt implements [CipherPolicy]. It is the same operation as Encrypt.
func (xorPolicy) Decrypt(blob []byte, password string) ([]byte, error) {
	return xorWithKey(blob, []byte(password))
}

func xorWithKey(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyPassword
	}

	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ key[i%len(key)]
	}
	return out, nil
}
