// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/fractal-cipher/internal/bits"
	"github.com/MKhiriev/fractal-cipher/internal/crypto"
	"github.com/MKhiriev/fractal-cipher/internal/frame"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/lsb"
	"github.com/MKhiriev/fractal-cipher/models"
)

// Result carries the outcome of an asynchronous codec call.
type Result[T any] struct {
	Value T
	Err   error
}

type stegoService struct {
	policy crypto.CipherPolicy

	logger *logger.Logger
}

// NewStegoService returns the codec facade for policy.
func NewStegoService(policy crypto.CipherPolicy, logger *logger.Logger) StegoService {
	return &stegoService{
		policy: policy,
		logger: logger,
	}
}

func (s *stegoService) Policy() crypto.CipherPolicy {
	return s.policy
}

// Encode implements [StegoService]. Pipeline: encrypt, frame, split into
// bits, embed. Any failure is returned wrapped in [ErrEncodeFailed].
func (s *stegoService) Encode(ctx context.Context, plaintext, password string, carrier models.PixelBuffer) (models.PixelBuffer, error) {
	if err := ctx.Err(); err != nil {
		return models.PixelBuffer{}, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}

	blob, err := s.policy.Encrypt([]byte(plaintext), password)
	if err != nil {
		return models.PixelBuffer{}, s.encodeFailure("encrypt", err)
	}

	framed, err := frame.Frame(blob)
	if err != nil {
		return models.PixelBuffer{}, s.encodeFailure("frame", err)
	}

	// key derivation is the slow part, so check again before touching pixels
	if err = ctx.Err(); err != nil {
		return models.PixelBuffer{}, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}

	out, err := lsb.Embed(carrier, bits.BytesToBits(framed))
	if err != nil {
		return models.PixelBuffer{}, s.encodeFailure("embed", err)
	}

	s.logger.Debug().
		Str("func", "*stegoService.Encode").
		Str("policy", s.policy.Name()).
		Int("payload_bytes", len(framed)).
		Int("capacity_bits", lsb.Capacity(len(carrier.Pix))).
		Msg("payload embedded")

	return out, nil
}

// Decode implements [StegoService]. Pipeline: extract and validate the
// header, extract the blob, decrypt, validate UTF-8. Any failure is returned wrapped in
// [ErrDecodeFailed]; text that is not valid UTF-8 is reported as
// [crypto.ErrDecryptionFailed] so the XOR policy never yields garbage.
func (s *stegoService) Decode(ctx context.Context, carrier models.PixelBuffer, password string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	// the header is validated before the rest of the bits are read
	blob, err := lsb.ExtractFramed(carrier)
	if err != nil {
		return "", s.decodeFailure("unframe", err)
	}

	plaintext, err := s.policy.Decrypt(blob, password)
	if err != nil {
		return "", s.decodeFailure("decrypt", err)
	}

	if !utf8.Valid(plaintext) {
		return "", s.decodeFailure("utf8", crypto.ErrDecryptionFailed)
	}

	s.logger.Debug().
		Str("func", "*stegoService.Decode").
		Str("policy", s.policy.Name()).
		Int("payload_bytes", frame.HeaderSize+len(blob)).
		Msg("payload recovered")

	return string(plaintext), nil
}

func (s *stegoService) EncodeAsync(ctx context.Context, plaintext, password string, carrier models.PixelBuffer) <-chan Result[models.PixelBuffer] {
	return runAsync(ctx, func() (models.PixelBuffer, error) {
		return s.Encode(ctx, plaintext, password, carrier)
	})
}

func (s *stegoService) DecodeAsync(ctx context.Context, carrier models.PixelBuffer, password string) <-chan Result[string] {
	return runAsync(ctx, func() (string, error) {
		return s.Decode(ctx, carrier, password)
	})
}

func (s *stegoService) encodeFailure(stage string, err error) error {
	s.logger.Err(err).Str("func", "*stegoService.Encode").Str("stage", stage).Msg("encode failed")
	return fmt.Errorf("%w: %w", ErrEncodeFailed, err)
}

func (s *stegoService) decodeFailure(stage string, err error) error {
	s.logger.Err(err).Str("func", "*stegoService.Decode").Str("stage", stage).Msg("decode failed")
	return fmt.Errorf("%w: %w", ErrDecodeFailed, err)
}

// runAsync runs fn on a new goroutine and delivers its outcome on a buffered
// channel, so the goroutine never blocks on a reader that went away. When ctx
// is done first, the channel receives ctx.Err() and the result of fn is
// dropped.
func runAsync[T any](ctx context.Context, fn func() (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)
	done := make(chan Result[T], 1)

	go func() {
		value, err := fn()
		done <- Result[T]{Value: value, Err: err}
	}()

	go func() {
		defer close(out)
		select {
		case res := <-done:
			out <- res
		case <-ctx.Done():
			out <- Result[T]{Err: ctx.Err()}
		}
	}()

	return out
}
