package adapter

import "errors"

var (
	ErrBadRequest           = errors.New("bad request")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrUnprocessable        = errors.New("unprocessable")
	ErrInternalServerError  = errors.New("internal server error")
	ErrBadGateway           = errors.New("bad gateway")

	// ErrIntegrityCheckFailed is returned when a downloaded image does not
	// match its HashSHA256 header.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrServerUnavailable is returned when the request never got a response.
	ErrServerUnavailable = errors.New("server is unavailable")
)

// ResponseError is a non-2xx answer from the server. Message is the text
// the server meant for the user.
type ResponseError struct {
	StatusCode int
	Message    string
	TraceID    string

	kind error
}

func (e *ResponseError) Error() string {
	if e.kind == nil {
		return e.Message
	}
	return e.kind.Error() + ": " + e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
