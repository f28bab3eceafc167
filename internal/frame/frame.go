// Package frame wraps a cipher blob in a 32-bit big-endian length header so
// that a decoder can tell where the hidden payload ends.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/fractal-cipher/internal/bits"
)

const (
	// HeaderSize is the size of the length prefix in bytes.
	HeaderSize = 4
	// HeaderBits is the size of the length prefix in bits.
	HeaderBits = HeaderSize * 8
	// MaxMessageLength is the largest blob length a decoder accepts.
	MaxMessageLength = 1_000_000
)

var (
	ErrPayloadTooLarge         = errors.New("payload too large")
	ErrInvalidOrMissingMessage = errors.New("invalid or missing hidden message")
	ErrTruncatedMessage        = errors.New("truncated hidden message")
)

// Frame returns header ‖ blob, where header is len(blob) as uint32 big-endian.
func Frame(blob []byte) ([]byte, error) {
	if uint64(len(blob)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(blob))
	}

	header := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(header, uint32(len(blob)))

	return bits.Concat(header, blob), nil
}

// DeclaredLength validates the header at the start of framed and returns the
// blob length it announces.
func DeclaredLength(framed []byte) (int, error) {
	if len(framed) < HeaderSize {
		return 0, fmt.Errorf("%w: header needs %d bytes, got %d", ErrInvalidOrMissingMessage, HeaderSize, len(framed))
	}

	// a set top bit is a negative signed length, which is rejected below as
	// well since it is larger than MaxMessageLength
	length := binary.BigEndian.Uint32(framed[:HeaderSize])
	if length == 0 || length > MaxMessageLength {
		return 0, fmt.Errorf("%w: declared length %d", ErrInvalidOrMissingMessage, length)
	}

	return int(length), nil
}

// Unframe reads the header and returns the blob that follows it. Bytes past
// the declared length are ignored.
func Unframe(framed []byte) ([]byte, error) {
	length, err := DeclaredLength(framed)
	if err != nil {
		return nil, err
	}

	if available := len(framed) - HeaderSize; available < length {
		return nil, fmt.Errorf("%w: declared %d bytes, %d available", ErrTruncatedMessage, length, available)
	}

	blob := make([]byte, length)
	copy(blob, framed[HeaderSize:HeaderSize+length])
	return blob, nil
}
