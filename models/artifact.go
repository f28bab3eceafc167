// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// StatusEmbedded is recorded for every artifact produced by an encode.
	StatusEmbedded = "Encrypted & embedded into fractal"

	// StatusDecrypted is reported after a successful decode.
	StatusDecrypted = "Decrypted successfully"

	// StatusDecodeError is reported when a decode fails for any reason.
	StatusDecodeError = "Decode error / wrong password"

	// DefaultFileName is the suggested download name of an encoded image.
	DefaultFileName = "fractal_cipher"
)

// Artifact describes an encoded carrier image. It is the metadata panel
// shown to the user next to the image and the row persisted for it.
// The hidden text and the password are never part of it.
type Artifact struct {
	// ID is the UUIDv7 identifier of the artifact.
	ID string `json:"id"`

	// Status is a human-readable result line, see StatusEmbedded.
	Status string `json:"status"`

	// Length is the hidden text length in characters.
	Length int `json:"length"`

	// Seed is the fractal seed in [0,1] the carrier was rendered with.
	Seed float64 `json:"seed"`

	// Encryption is the label of the cipher policy that produced the payload.
	Encryption string `json:"encryption"`

	// Width and Height are the carrier dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the lossless container of the stored image.
	Format ImageFormat `json:"format"`

	// EncodedAt is the moment the payload was embedded.
	EncodedAt time.Time `json:"encoded_at"`
}

// FileName returns the suggested download name of the artifact image.
func (a Artifact) FileName() string {
	return DefaultFileName + a.Format.Extension()
}

// ArtifactFilter narrows artifact listings. Zero values mean "no filter".
type ArtifactFilter struct {
	// Format keeps only artifacts stored in this container.
	Format ImageFormat `json:"format,omitempty"`

	// EncodedAfter keeps only artifacts encoded strictly after this moment.
	EncodedAfter *time.Time `json:"encoded_after,omitempty"`

	// Limit caps the number of returned rows; 0 means the repository default.
	Limit uint64 `json:"limit,omitempty"`
}
