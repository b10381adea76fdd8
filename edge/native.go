package edge

import (
	"fmt"

	"github.com/opd-ai/edgepreview/frame"
	"github.com/opd-ai/edgepreview/yuv"
)

// Luma weights in 14-bit fixed point (0.299, 0.587, 0.114).
const (
	grayR     = 4899
	grayG     = 9617
	grayB     = 1868
	grayShift = 14
	grayRound = 1 << (grayShift - 1)
)

// Native is the pure Go backend. It is stateless.
type Native struct{}

var _ Backend = Native{}

// Grayscale implements Backend.
func (Native) Grayscale(buf *frame.Buffer, width, height int) (*Gray, error) {
	if err := checkRegion(buf, width, height); err != nil {
		return nil, err
	}

	gray := NewGray(width, height)
	for y := 0; y < height; y++ {
		row := buf.Pix[y*buf.Stride : y*buf.Stride+width]
		out := gray.Pix[y*width : (y+1)*width]
		for x, v := range row {
			p := yuv.Pixel(v)
			out[x] = uint8((grayR*uint32(p.R()) + grayG*uint32(p.G()) + grayB*uint32(p.B()) + grayRound) >> grayShift)
		}
	}
	return gray, nil
}

// Edges implements Backend.
func (Native) Edges(gray *Gray, low, high float64, aperture int) (*Gray, error) {
	if gray == nil || len(gray.Pix) < gray.Width*gray.Height {
		return nil, fmt.Errorf("grayscale input missing or short: %w", ErrInvalidParams)
	}
	if err := validAperture(aperture); err != nil {
		return nil, err
	}
	if low < 0 || high < 0 {
		return nil, fmt.Errorf("negative threshold (%g, %g): %w", low, high, ErrInvalidParams)
	}
	if low > high {
		low, high = high, low
	}
	return canny(boxBlur3(gray), int32(low), int32(high), aperture), nil
}

// checkRegion verifies that a width x height region fits in buf.
func checkRegion(buf *frame.Buffer, width, height int) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if width < 0 || height < 0 || width > buf.Width || height > buf.Height {
		return fmt.Errorf("region %dx%d in %dx%d buffer: %w", width, height, buf.Width, buf.Height, ErrRegionOutOfBounds)
	}
	return nil
}

// reflect101 maps an out-of-range index back into [0, n) mirroring about
// the edge pixel without repeating it (gfedcb|abcdefgh|gfedcba).
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*n - 2 - i
		}
	}
	return i
}

// replicate clamps an index into [0, n).
func replicate(i, n int) int {
	return max(0, min(i, n-1))
}

// boxBlur3 returns the normalized 3x3 box filter of g with reflect-101
// borders, rounded to nearest.
func boxBlur3(g *Gray) *Gray {
	w, h := g.Width, g.Height
	out := NewGray(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				row := reflect101(y+dy, h) * w
				for dx := -1; dx <= 1; dx++ {
					sum += int(g.Pix[row+reflect101(x+dx, w)])
				}
			}
			out.Pix[y*w+x] = uint8((sum + 4) / 9)
		}
	}
	return out
}
