package edge

import (
	"fmt"

	"github.com/opd-ai/edgepreview/frame"
)

// Overlay replaces a rendered region with its colored edge map.
type Overlay struct {
	backend Backend
	params  Params
}

// NewOverlay creates an overlay. A nil backend selects Native. Parameters
// are checked by Apply, so callers that build them from user input should
// call Params.Validate first for an early error.
func NewOverlay(backend Backend, params Params) *Overlay {
	if backend == nil {
		backend = Native{}
	}
	return &Overlay{backend: backend, params: params}
}

// Params returns the overlay's edge detection parameters.
func (o *Overlay) Params() Params {
	return o.params
}

// Apply detects edges in the top-left width x height region of buf and
// rewrites that region in place: edge pixels keep their color, every other
// pixel becomes 0. Pixels outside the region are not touched. A region with
// zero area is a no-op.
func (o *Overlay) Apply(buf *frame.Buffer, width, height int) error {
	if err := o.params.Validate(); err != nil {
		return err
	}
	if err := checkRegion(buf, width, height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	gray, err := o.backend.Grayscale(buf, width, height)
	if err != nil {
		return fmt.Errorf("grayscale conversion failed: %w", err)
	}

	mask, err := o.backend.Edges(gray, float64(o.params.LowThreshold), float64(o.params.HighThreshold()), o.params.KernelSize)
	if err != nil {
		return fmt.Errorf("edge detection failed: %w", err)
	}
	if mask.Width != width || mask.Height != height || len(mask.Pix) < width*height {
		return fmt.Errorf("edge mask is %dx%d, want %dx%d: %w", mask.Width, mask.Height, width, height, ErrInvalidParams)
	}

	// Blank canvas with the original colors copied in under the mask.
	canvas := make([]uint32, width*height)
	for y := 0; y < height; y++ {
		src := buf.Pix[y*buf.Stride : y*buf.Stride+width]
		for x, m := range mask.Pix[y*width : (y+1)*width] {
			if m != 0 {
				canvas[y*width+x] = src[x]
			}
		}
	}

	for y := 0; y < height; y++ {
		copy(buf.Pix[y*buf.Stride:y*buf.Stride+width], canvas[y*width:(y+1)*width])
	}
	return nil
}
