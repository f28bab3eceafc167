package models

// ImageFormat names a lossless container the carrier image can be stored in.
type ImageFormat string

const (
	FormatPNG ImageFormat = "png"
	FormatBMP ImageFormat = "bmp"
)

// Extension returns the file extension for f, including the dot.
func (f ImageFormat) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type for f.
func (f ImageFormat) ContentType() string {
	switch f {
	case FormatBMP:
		return "image/bmp"
	default:
		return "image/png"
	}
}

// Valid reports whether f is a supported lossless format.
func (f ImageFormat) Valid() bool {
	return f == FormatPNG || f == FormatBMP
}
