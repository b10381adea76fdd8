package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxFrameDimension is the largest accepted frame width or height.
	MaxFrameDimension = 8192

	// MaxFramePixels is the largest accepted luma sample count (64 MP).
	MaxFramePixels = 64 << 20

	// MaxFrameDumpBytes is the size of a YUV 4:2:0 frame at MaxFramePixels.
	MaxFrameDumpBytes = MaxFramePixels * 3 / 2
)

var (
	// ErrFrameEmpty indicates a zero or negative frame dimension
	ErrFrameEmpty = errors.New("empty frame")

	// ErrFrameTooLarge indicates a frame exceeds the size limits
	ErrFrameTooLarge = errors.New("frame too large")
)

// ValidateFrameSize checks frame dimensions against MaxFrameDimension and
// MaxFramePixels.
func ValidateFrameSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrFrameEmpty, width, height)
	}
	if width > MaxFrameDimension || height > MaxFrameDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d per side", ErrFrameTooLarge, width, height, MaxFrameDimension)
	}
	if width*height > MaxFramePixels {
		return fmt.Errorf("%w: %d pixels exceeds limit %d", ErrFrameTooLarge, width*height, MaxFramePixels)
	}
	return nil
}

// ValidateDumpSize checks a raw frame dump length against MaxFrameDumpBytes.
func ValidateDumpSize(size int) error {
	if size <= 0 {
		return ErrFrameEmpty
	}
	if size > MaxFrameDumpBytes {
		return fmt.Errorf("%w: dump size %d exceeds limit %d", ErrFrameTooLarge, size, MaxFrameDumpBytes)
	}
	return nil
}
