package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrEncodeFailed wraps every failure of [StegoService.Encode]. The
	// failing stage stays reachable through errors.Is.
	ErrEncodeFailed = errors.New("encode failed")

	// ErrDecodeFailed wraps every failure of [StegoService.Decode].
	ErrDecodeFailed = errors.New("decode failed")

	ErrValidationNoText     = errors.New("no text to hide was given")
	ErrValidationNoPassword = errors.New("no password was given")
	ErrValidationNoImage    = errors.New("no image was given")
	ErrValidationImageSize  = errors.New("image size is out of range")
	ErrValidationFormat     = errors.New("unsupported image format")
)
