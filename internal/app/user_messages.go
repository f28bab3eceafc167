package app

import (
	"errors"

	"github.com/MKhiriev/fractal-cipher/internal/crypto"
	"github.com/MKhiriev/fractal-cipher/internal/frame"
	"github.com/MKhiriev/fractal-cipher/internal/imageio"
	"github.com/MKhiriev/fractal-cipher/internal/lsb"
	"github.com/MKhiriev/fractal-cipher/internal/service"
	"github.com/MKhiriev/fractal-cipher/internal/store"
)

// userMessages is checked in order; the first matching target wins.
var userMessages = []struct {
	target  error
	message string
}{
	{crypto.ErrDecryptionFailed, MsgWrongPasswordOrCorrupted},
	{crypto.ErrInvalidPayload, MsgWrongPasswordOrCorrupted},
	{crypto.ErrEmptyPassword, MsgNoPassword},
	{crypto.ErrUnknownPolicy, MsgUnknownCipherPolicy},
	{frame.ErrTruncatedMessage, MsgTruncatedMessage},
	{frame.ErrInvalidOrMissingMessage, MsgInvalidOrNoMessage},
	{frame.ErrPayloadTooLarge, MsgTooLongForCanvas},
	{lsb.ErrCapacityExceeded, MsgTooLongForCanvas},
	{lsb.ErrInvalidPixelBuffer, MsgInvalidDataProvided},
	{service.ErrValidationNoText, MsgNoText},
	{service.ErrValidationNoPassword, MsgNoPassword},
	{service.ErrValidationNoImage, MsgNoImage},
	{service.ErrValidationImageSize, MsgImageSize},
	{service.ErrValidationFormat, MsgUnsupportedImage},
	{service.ErrInvalidDataProvided, MsgInvalidDataProvided},
	{imageio.ErrUnsupportedFormat, MsgUnsupportedImage},
	{imageio.ErrImageTooLarge, MsgImageTooLarge},
	{imageio.ErrCorruptImage, MsgCorruptImage},
	{store.ErrArtifactNotFound, MsgImageNotFound},
	{store.ErrInvalidArtifactID, MsgImageNotFound},
}

// UserMessage returns the text shown to a person for err. Unknown errors
// map to [MsgInternalServerError].
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return MsgInternalServerError
}
