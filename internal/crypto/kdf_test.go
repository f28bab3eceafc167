package crypto

import (
	"bytes"
	"testing"
)

func TestPBKDF2_DeterministicForSameInputs(t *testing.T) {
	kdf := NewPBKDF2KeyDeriver(MinPBKDF2Iterations)

	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1 := kdf.DeriveKey(password, salt)
	k2 := kdf.DeriveKey(password, salt)

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for same password+salt")
	}
}

func TestPBKDF2_DifferentSaltProducesDifferentKey(t *testing.T) {
	kdf := NewPBKDF2KeyDeriver(MinPBKDF2Iterations)

	k1 := kdf.DeriveKey("same password", bytes.Repeat([]byte{0x01}, SaltSize))
	k2 := kdf.DeriveKey("same password", bytes.Repeat([]byte{0x02}, SaltSize))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestPBKDF2_IterationsClampedToMinimum(t *testing.T) {
	kdf := NewPBKDF2KeyDeriver(10).(*pbkdf2KeyDeriver)
	if kdf.iterations != MinPBKDF2Iterations {
		t.Fatalf("iterations = %d, want %d", kdf.iterations, MinPBKDF2Iterations)
	}

	kdf = NewPBKDF2KeyDeriver(250_000).(*pbkdf2KeyDeriver)
	if kdf.iterations != 250_000 {
		t.Fatalf("iterations = %d, want 250000", kdf.iterations)
	}
}

func TestArgon2id_DeterministicAndSalted(t *testing.T) {
	kdf := NewArgon2idKeyDeriver()

	salt1 := bytes.Repeat([]byte{0x11}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x22}, SaltSize)

	k1 := kdf.DeriveKey("pw", salt1)
	k2 := kdf.DeriveKey("pw", salt1)
	k3 := kdf.DeriveKey("pw", salt2)

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected Argon2id to be deterministic")
	}
	if bytes.Equal(k1, k3) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestKeyDeriverNames(t *testing.T) {
	if got := NewPBKDF2KeyDeriver(0).Name(); got != KDFPBKDF2 {
		t.Errorf("pbkdf2 name = %q", got)
	}
	if got := NewArgon2idKeyDeriver().Name(); got != KDFArgon2id {
		t.Errorf("argon2id name = %q", got)
	}
}
