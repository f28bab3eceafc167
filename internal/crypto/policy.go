package crypto

import "fmt"

// NewPolicy builds the [CipherPolicy] named by policy. kdfName and iterations
// only matter for the authenticated policy; an empty kdfName selects PBKDF2.
func NewPolicy(policy, kdfName string, iterations int) (CipherPolicy, error) {
	switch policy {
	case "", PolicyAEAD:
		kdf, err := NewKeyDeriver(kdfName, iterations)
		if err != nil {
			return nil, err
		}
		return NewAuthenticatedAEAD(kdf), nil
	case PolicyXOR:
		return NewXorStream(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
}

// NewKeyDeriver builds the [KeyDeriver] named by name.
func NewKeyDeriver(name string, iterations int) (KeyDeriver, error) {
	switch name {
	case "", KDFPBKDF2:
		return NewPBKDF2KeyDeriver(iterations), nil
	case KDFArgon2id:
		return NewArgon2idKeyDeriver(), nil
	default:
		return nil, fmt.Errorf("%w: unknown kdf %q", ErrUnknownPolicy, name)
	}
}
