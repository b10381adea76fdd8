package edge

import (
	"github.com/opd-ai/edgepreview/frame"
	"github.com/opd-ai/edgepreview/yuv"
)

// createTestBuffer returns a buffer whose region columns [0, split) hold
// left and columns [split, width) hold right.
func createTestBuffer(width, height, stride, split int, left, right yuv.Pixel) *frame.Buffer {
	buf := frame.NewBuffer(width, height, stride, frame.FormatRGBA8888)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < split {
				buf.Set(x, y, left)
			} else {
				buf.Set(x, y, right)
			}
		}
	}
	return buf
}

func grayFrom(width, height int, f func(x, y int) byte) *Gray {
	g := NewGray(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Pix[y*width+x] = f(x, y)
		}
	}
	return g
}

// maskBackend is a trivial Backend that reports a fixed mask.
type maskBackend struct {
	mask    *Gray
	grayErr error
	edgeErr error
	calls   []string
}

func (m *maskBackend) Grayscale(buf *frame.Buffer, width, height int) (*Gray, error) {
	m.calls = append(m.calls, "grayscale")
	if m.grayErr != nil {
		return nil, m.grayErr
	}
	return NewGray(width, height), nil
}

func (m *maskBackend) Edges(gray *Gray, low, high float64, aperture int) (*Gray, error) {
	m.calls = append(m.calls, "edges")
	if m.edgeErr != nil {
		return nil, m.edgeErr
	}
	return m.mask, nil
}
