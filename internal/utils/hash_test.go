package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasher_MatchesHMAC(t *testing.T) {
	data := []byte("\x89PNG fake image bytes")

	mac := hmac.New(sha256.New, []byte("key"))
	mac.Write(data)
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, NewHasher("key").HashHex(data))
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("same body")
	assert.NotEqual(t, NewHasher("a").HashHex(data), NewHasher("b").HashHex(data))
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher("key")
	data := []byte("body")
	sig := h.HashHex(data)

	assert.True(t, h.Verify(data, sig))
	assert.False(t, h.Verify([]byte("other body"), sig))
	assert.False(t, h.Verify(data, "not-hex"))
	assert.False(t, h.Verify(data, ""))
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher("key")
	want := h.HashHex([]byte("payload"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, want, h.HashHex([]byte("payload")))
			}
		}()
	}
	wg.Wait()
}
