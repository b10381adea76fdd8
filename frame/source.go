// Package frame describes camera frames and output buffers and maps one
// onto the other.
//
// A SourceFrame is a planar YUV 4:2:0 capture read in place. A Buffer is a
// strided block of packed 32-bit pixels owned by an output surface. Map
// fills the buffer with the cropped, downscaled and 90° rotated color image
// of the source.
package frame

import "fmt"

// Plane is one read-only sample plane of a source frame.
type Plane struct {
	Data []byte
	// RowStride is the byte distance between the starts of two rows.
	RowStride int
	// PixelStride is the byte distance between two samples of a row.
	// Zero is treated as 1.
	PixelStride int
}

func (p Plane) step() int {
	if p.PixelStride <= 0 {
		return 1
	}
	return p.PixelStride
}

// ChromaOrder tells the mapper which of the U and V planes carries Cb.
type ChromaOrder uint8

const (
	// ChromaUV means the U plane holds Cb and the V plane holds Cr.
	ChromaUV ChromaOrder = iota
	// ChromaVU means the planes are physically V-before-U: the U plane
	// holds Cr and the V plane holds Cb.
	ChromaVU
)

// String returns the order name.
func (o ChromaOrder) String() string {
	switch o {
	case ChromaUV:
		return "UV"
	case ChromaVU:
		return "VU"
	default:
		return fmt.Sprintf("ChromaOrder(%d)", uint8(o))
	}
}

// CropRect is the region of interest in luma pixel coordinates.
// Bottom and Right are exclusive.
type CropRect struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Width returns the horizontal extent of the rectangle.
func (c CropRect) Width() int { return c.Right - c.Left }

// Height returns the vertical extent of the rectangle.
func (c CropRect) Height() int { return c.Bottom - c.Top }

// Empty reports whether the rectangle has zero area.
func (c CropRect) Empty() bool { return c.Width() <= 0 || c.Height() <= 0 }

// FullCrop returns the crop rectangle covering a whole width x height frame.
func FullCrop(width, height int) CropRect {
	return CropRect{Top: 0, Bottom: height, Left: 0, Right: width}
}

// SourceFrame is a planar YUV 4:2:0 frame. Chroma planes are subsampled by
// two in both directions. The planes are borrowed from the capture side and
// are never copied or written.
type SourceFrame struct {
	Width       int // full sensor width in luma pixels
	Height      int // full sensor height in luma pixels
	Y           Plane
	U           Plane
	V           Plane
	Crop        CropRect
	ChromaOrder ChromaOrder
}

// chroma returns the Cb and Cr planes according to the frame's chroma order.
func (f *SourceFrame) chroma() (cb, cr Plane) {
	if f.ChromaOrder == ChromaVU {
		return f.V, f.U
	}
	return f.U, f.V
}

// Validate checks that the planes are present, that the crop rectangle is
// well-formed and inside the frame, and that every plane is large enough to
// cover the crop. A zero-area crop is valid.
func (f *SourceFrame) Validate() error {
	if f == nil {
		return fmt.Errorf("source frame cannot be nil: %w", ErrSourceUnavailable)
	}
	if len(f.Y.Data) == 0 {
		return fmt.Errorf("Y plane: %w", ErrSourceUnavailable)
	}
	if len(f.U.Data) == 0 {
		return fmt.Errorf("U plane: %w", ErrSourceUnavailable)
	}
	if len(f.V.Data) == 0 {
		return fmt.Errorf("V plane: %w", ErrSourceUnavailable)
	}

	c := f.Crop
	if c.Top < 0 || c.Left < 0 || c.Bottom < c.Top || c.Right < c.Left {
		return fmt.Errorf("crop t=%d b=%d l=%d r=%d: %w", c.Top, c.Bottom, c.Left, c.Right, ErrInvalidCrop)
	}
	if c.Bottom > f.Height || c.Right > f.Width {
		return fmt.Errorf("crop t=%d b=%d l=%d r=%d exceeds %dx%d frame: %w",
			c.Top, c.Bottom, c.Left, c.Right, f.Width, f.Height, ErrInvalidCrop)
	}
	if c.Empty() {
		return nil
	}

	lastRow, lastCol := c.Bottom-1, c.Right-1
	if err := checkPlane("Y", f.Y, lastRow, lastCol); err != nil {
		return err
	}
	if err := checkPlane("U", f.U, lastRow>>1, lastCol>>1); err != nil {
		return err
	}
	return checkPlane("V", f.V, lastRow>>1, lastCol>>1)
}

// checkPlane verifies that the sample at (row, col) is addressable.
func checkPlane(name string, p Plane, row, col int) error {
	if p.RowStride < 0 || p.PixelStride < 0 {
		return fmt.Errorf("%s plane has negative stride (row %d, pixel %d): %w",
			name, p.RowStride, p.PixelStride, ErrSourceUnavailable)
	}
	need := row*p.RowStride + col*p.step() + 1
	if len(p.Data) < need {
		return fmt.Errorf("%s plane too small: got %d, need %d: %w", name, len(p.Data), need, ErrSourceUnavailable)
	}
	return nil
}
