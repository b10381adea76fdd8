package frame

import "errors"

// Sentinel errors for frame validation and mapping.
// Callers classify failures with errors.Is.

// Source errors.
var (
	// ErrSourceUnavailable indicates a source plane is missing or does not
	// cover the crop rectangle.
	ErrSourceUnavailable = errors.New("source plane unavailable")

	// ErrInvalidCrop indicates the crop rectangle is inverted or lies
	// outside the frame.
	ErrInvalidCrop = errors.New("invalid crop rectangle")
)

// Destination errors.
var (
	// ErrInvalidBuffer indicates inconsistent destination dimensions, stride
	// or backing storage.
	ErrInvalidBuffer = errors.New("invalid destination buffer")

	// ErrUnsupportedFormat indicates a destination pixel format other than
	// RGBA_8888 or RGBX_8888.
	ErrUnsupportedFormat = errors.New("unsupported destination pixel format")
)
