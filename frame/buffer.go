package frame

import (
	"fmt"
	"image"

	"github.com/opd-ai/edgepreview/yuv"
)

// PixelFormat identifies the channel layout of a destination buffer.
type PixelFormat uint8

const (
	// FormatUnknown is the zero value and is never accepted.
	FormatUnknown PixelFormat = iota
	// FormatRGBA8888 stores R, G, B, A bytes in memory order.
	FormatRGBA8888
	// FormatRGBX8888 stores R, G, B and an ignored fourth byte.
	FormatRGBX8888
)

// String returns the format name.
func (f PixelFormat) String() string {
	switch f {
	case FormatRGBA8888:
		return "RGBA_8888"
	case FormatRGBX8888:
		return "RGBX_8888"
	default:
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
}

// Supported reports whether the mapper can write this format.
func (f PixelFormat) Supported() bool {
	return f == FormatRGBA8888 || f == FormatRGBX8888
}

// Buffer is a strided block of packed 32-bit pixels. Stride is counted in
// pixels, not bytes. The buffer is borrowed for the duration of one lock
// scope; the pipeline writes into Pix but never retains it.
type Buffer struct {
	Pix    []uint32
	Width  int
	Height int
	Stride int
	Format PixelFormat
}

// NewBuffer allocates a zeroed buffer. A stride smaller than width is
// raised to width.
func NewBuffer(width, height, stride int, format PixelFormat) *Buffer {
	if stride < width {
		stride = width
	}
	return &Buffer{
		Pix:    make([]uint32, extent(width, height, stride)),
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
}

// extent is the number of pixels a width x height region with the given
// stride spans. The last row is not padded.
func extent(width, height, stride int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return (height-1)*stride + width
}

// Validate checks the format, the dimensions and that Pix covers them.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("destination buffer cannot be nil: %w", ErrInvalidBuffer)
	}
	if !b.Format.Supported() {
		return fmt.Errorf("%s: %w", b.Format, ErrUnsupportedFormat)
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("invalid dimensions %dx%d: %w", b.Width, b.Height, ErrInvalidBuffer)
	}
	if b.Stride < b.Width {
		return fmt.Errorf("stride %d smaller than width %d: %w", b.Stride, b.Width, ErrInvalidBuffer)
	}
	if need := extent(b.Width, b.Height, b.Stride); len(b.Pix) < need {
		return fmt.Errorf("pixel storage too small: got %d, need %d: %w", len(b.Pix), need, ErrInvalidBuffer)
	}
	return nil
}

// At returns the pixel at column x, row y.
func (b *Buffer) At(x, y int) yuv.Pixel {
	return yuv.Pixel(b.Pix[y*b.Stride+x])
}

// Set stores the pixel at column x, row y.
func (b *Buffer) Set(x, y int, p yuv.Pixel) {
	b.Pix[y*b.Stride+x] = uint32(p)
}

// Image copies the buffer into an *image.RGBA. Written pixels are opaque and
// blank pixels are zero, so the copy is valid premultiplied RGBA.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := b.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = p.R()
			img.Pix[i+1] = p.G()
			img.Pix[i+2] = p.B()
			img.Pix[i+3] = p.A()
		}
	}
	return img
}
