// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used by the HTTP
// handlers and the terminal client.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies or shown on screen. Keeping them in one place keeps the wording the
// same whether a message was encoded locally or through the server.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoText is returned when there is no message to hide.
	MsgNoText = "Enter a message to hide."

	// MsgNoPassword is returned when the password is empty or blank.
	MsgNoPassword = "Enter a password."

	// MsgNoImage is returned when a decode request carries no image.
	MsgNoImage = "Choose an image to decode."

	// MsgImageSize is returned for carrier sizes outside the allowed range.
	MsgImageSize = "Image size is out of range."

	// MsgTooLongForCanvas is returned when the encrypted message does not
	// fit into the carrier.
	MsgTooLongForCanvas = "Message too long for this canvas size."

	// MsgInvalidOrNoMessage is returned when the length header read from
	// the image is zero or implausibly large.
	MsgInvalidOrNoMessage = "Invalid or no message found."

	// MsgTruncatedMessage is returned when the header announces more bytes
	// than the image holds.
	MsgTruncatedMessage = "Message truncated or corrupt."

	// MsgWrongPasswordOrCorrupted covers every decryption failure. A wrong
	// password and a damaged image are deliberately indistinguishable.
	MsgWrongPasswordOrCorrupted = "Wrong password or corrupted image."

	// MsgUnsupportedImage is returned for lossy or unknown image formats.
	MsgUnsupportedImage = "Only lossless PNG or BMP images can carry a message."

	// MsgImageTooLarge is returned when an uploaded image exceeds the pixel
	// or byte limit.
	MsgImageTooLarge = "Image is too large."

	// MsgCorruptImage is returned when a PNG or BMP file cannot be read.
	MsgCorruptImage = "Image is corrupted or incomplete."

	// MsgUnknownCipherPolicy is returned for an unknown cipher or KDF name.
	MsgUnknownCipherPolicy = "unknown cipher policy"

	// MsgImageNotFound is returned when no stored image has the requested ID.
	MsgImageNotFound = "image not found"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgServerUnavailable is shown by the terminal client when the server
	// cannot be reached.
	MsgServerUnavailable = "server is unavailable"
)
