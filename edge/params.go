package edge

import (
	"errors"
	"fmt"

	"github.com/opd-ai/edgepreview/frame"
)

// ErrInvalidParams indicates unusable edge detection parameters.
var ErrInvalidParams = errors.New("invalid edge detection parameters")

// ErrRegionOutOfBounds indicates an overlay region larger than the buffer.
var ErrRegionOutOfBounds = errors.New("overlay region exceeds buffer")

// Params are the three edge detection tunables.
type Params struct {
	// LowThreshold is the lower hysteresis bound on gradient magnitude.
	LowThreshold int
	// Ratio multiplies LowThreshold to give the upper bound. 2 to 3 is
	// the recommended range.
	Ratio int
	// KernelSize is the Sobel aperture: 3, 5 or 7.
	KernelSize int
}

// DefaultParams returns the preview defaults: low threshold 30, ratio 3,
// aperture 3.
func DefaultParams() Params {
	return Params{LowThreshold: 30, Ratio: 3, KernelSize: 3}
}

// HighThreshold returns LowThreshold * Ratio.
func (p Params) HighThreshold() int {
	return p.LowThreshold * p.Ratio
}

// Validate rejects negative thresholds, ratios below 1 and apertures other
// than 3, 5 and 7.
func (p Params) Validate() error {
	if p.LowThreshold < 0 {
		return fmt.Errorf("low threshold %d is negative: %w", p.LowThreshold, ErrInvalidParams)
	}
	if p.Ratio < 1 {
		return fmt.Errorf("ratio %d is below 1: %w", p.Ratio, ErrInvalidParams)
	}
	return validAperture(p.KernelSize)
}

func validAperture(size int) error {
	switch size {
	case 3, 5, 7:
		return nil
	default:
		return fmt.Errorf("kernel size %d not in {3,5,7}: %w", size, ErrInvalidParams)
	}
}

// Gray is a tightly packed single-channel image. It holds grayscale values
// or, as an edge mask, 0 and 255.
type Gray struct {
	Pix    []byte
	Width  int
	Height int
}

// NewGray allocates a zeroed width x height image.
func NewGray(width, height int) *Gray {
	return &Gray{Pix: make([]byte, width*height), Width: width, Height: height}
}

// At returns the value at column x, row y.
func (g *Gray) At(x, y int) byte {
	return g.Pix[y*g.Width+x]
}

// Backend is the image-processing capability the overlay depends on.
type Backend interface {
	// Grayscale converts the top-left width x height region of buf to luma.
	Grayscale(buf *frame.Buffer, width, height int) (*Gray, error)
	// Edges smooths gray with a 3x3 box blur and runs Canny with the given
	// hysteresis thresholds and Sobel aperture. The result is a 0/255 mask.
	Edges(gray *Gray, low, high float64, aperture int) (*Gray, error)
}
