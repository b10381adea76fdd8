//go:build gocv

package edge

import (
	"encoding/binary"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/opd-ai/edgepreview/frame"
)

// CV is a Backend that runs color conversion, blur and Canny in OpenCV.
// It requires the gocv build tag and an installed OpenCV. gocv's Canny
// always uses a 3x3 Sobel aperture.
type CV struct{}

var _ Backend = CV{}

// Grayscale implements Backend.
func (CV) Grayscale(buf *frame.Buffer, width, height int) (*Gray, error) {
	if err := checkRegion(buf, width, height); err != nil {
		return nil, err
	}
	if width == 0 || height == 0 {
		return NewGray(width, height), nil
	}

	data := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x, v := range buf.Pix[y*buf.Stride : y*buf.Stride+width] {
			binary.LittleEndian.PutUint32(data[(y*width+x)*4:], v)
		}
	}

	rgba, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC4, data)
	if err != nil {
		return nil, fmt.Errorf("wrap RGBA pixels: %w", err)
	}
	defer rgba.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(rgba, &gray, gocv.ColorRGBAToGray)

	return &Gray{Pix: gray.ToBytes(), Width: width, Height: height}, nil
}

// Edges implements Backend.
func (CV) Edges(g *Gray, low, high float64, aperture int) (*Gray, error) {
	if g == nil || len(g.Pix) < g.Width*g.Height {
		return nil, fmt.Errorf("grayscale input missing or short: %w", ErrInvalidParams)
	}
	if aperture != 3 {
		return nil, fmt.Errorf("OpenCV backend supports aperture 3 only, got %d: %w", aperture, ErrInvalidParams)
	}
	if g.Width == 0 || g.Height == 0 {
		return NewGray(g.Width, g.Height), nil
	}

	src, err := gocv.NewMatFromBytes(g.Height, g.Width, gocv.MatTypeCV8UC1, g.Pix[:g.Width*g.Height])
	if err != nil {
		return nil, fmt.Errorf("wrap grayscale pixels: %w", err)
	}
	defer src.Close()

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.Blur(src, &blurred, image.Pt(3, 3))

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(blurred, &edges, float32(low), float32(high))

	return &Gray{Pix: edges.ToBytes(), Width: g.Width, Height: g.Height}, nil
}
