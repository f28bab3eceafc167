package models

// EncodeRequest asks the server to render a carrier and hide Text in it.
type EncodeRequest struct {
	// Text is the secret message. Required.
	Text string `json:"text"`

	// Password protects the message. Required.
	Password string `json:"password"`

	// SeedPhrase drives the fractal appearance. The configured default
	// phrase is used when empty.
	SeedPhrase string `json:"seed_phrase,omitempty"`

	// Width and Height of the carrier; configured defaults when zero.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Format of the stored image; png when empty.
	Format ImageFormat `json:"format,omitempty"`
}

// DecodeRequest carries a carrier image and the password to open it.
// The HTTP transport fills it from a multipart form.
type DecodeRequest struct {
	Image    []byte
	Password string
}
