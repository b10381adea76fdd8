// Package framefile loads raw camera frame dumps and saves rendered
// previews as image files.
//
// Dumps are headerless YUV 4:2:0 in one of three common layouts, optionally
// zstd-compressed. Interleaved layouts are exposed as two chroma plane views
// over the same bytes with a pixel stride of 2, exactly as a camera HAL
// would hand them over.
package framefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/edgepreview/frame"
	"github.com/opd-ai/edgepreview/limits"
)

// ErrUnknownLayout indicates an unrecognized dump layout name.
var ErrUnknownLayout = errors.New("unknown frame layout")

// Layout is the byte arrangement of a raw YUV 4:2:0 dump.
type Layout uint8

const (
	// LayoutI420 is Y plane, then U plane, then V plane.
	LayoutI420 Layout = iota
	// LayoutNV12 is Y plane, then interleaved U/V pairs.
	LayoutNV12
	// LayoutNV21 is Y plane, then interleaved V/U pairs.
	LayoutNV21
)

// String returns the conventional layout name.
func (l Layout) String() string {
	switch l {
	case LayoutI420:
		return "i420"
	case LayoutNV12:
		return "nv12"
	case LayoutNV21:
		return "nv21"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// ParseLayout maps a case-insensitive name to a Layout. "yuv420p" and
// "iyuv" are accepted as aliases of i420.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(name) {
	case "i420", "yuv420p", "iyuv":
		return LayoutI420, nil
	case "nv12":
		return LayoutNV12, nil
	case "nv21":
		return LayoutNV21, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownLayout)
	}
}

// FrameSize returns the byte length of a width x height dump. Odd
// dimensions round the chroma planes up.
func FrameSize(width, height int) int {
	cw, ch := (width+1)/2, (height+1)/2
	return width*height + 2*cw*ch
}

// NewFrame wraps data as a SourceFrame without copying. The crop covers the
// whole frame.
func NewFrame(data []byte, width, height int, layout Layout) (*frame.SourceFrame, error) {
	if err := limits.ValidateFrameSize(width, height); err != nil {
		return nil, err
	}
	size := FrameSize(width, height)
	if len(data) < size {
		return nil, fmt.Errorf("frame data too small: got %d, need %d: %w", len(data), size, frame.ErrSourceUnavailable)
	}

	ySize := width * height
	cw, ch := (width+1)/2, (height+1)/2
	f := &frame.SourceFrame{
		Width:  width,
		Height: height,
		Y:      frame.Plane{Data: data[:ySize], RowStride: width, PixelStride: 1},
		Crop:   frame.FullCrop(width, height),
	}

	chroma := data[ySize:size]
	switch layout {
	case LayoutI420:
		f.U = frame.Plane{Data: chroma[:cw*ch], RowStride: cw, PixelStride: 1}
		f.V = frame.Plane{Data: chroma[cw*ch:], RowStride: cw, PixelStride: 1}
	case LayoutNV12:
		f.U = frame.Plane{Data: chroma, RowStride: 2 * cw, PixelStride: 2}
		f.V = frame.Plane{Data: chroma[1:], RowStride: 2 * cw, PixelStride: 2}
	case LayoutNV21:
		// The first interleaved byte is Cr, so the plane views are
		// physically V-before-U.
		f.U = frame.Plane{Data: chroma, RowStride: 2 * cw, PixelStride: 2}
		f.V = frame.Plane{Data: chroma[1:], RowStride: 2 * cw, PixelStride: 2}
		f.ChromaOrder = frame.ChromaVU
	default:
		return nil, fmt.Errorf("%s: %w", layout, ErrUnknownLayout)
	}
	return f, nil
}

// ReadFrame reads exactly one dump from r.
func ReadFrame(r io.Reader, width, height int, layout Layout) (*frame.SourceFrame, error) {
	if err := limits.ValidateFrameSize(width, height); err != nil {
		return nil, err
	}
	size := FrameSize(width, height)
	if err := limits.ValidateDumpSize(size); err != nil {
		return nil, err
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("read %dx%d %s frame: %w", width, height, layout, err)
	}
	return NewFrame(data, width, height, layout)
}

// OpenFrame reads a dump from path. Files ending in .zst are decompressed
// on the fly.
func OpenFrame(path string, width, height int, layout Layout) (*frame.SourceFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frame: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	compressed := strings.EqualFold(filepath.Ext(path), ".zst")
	if compressed {
		dec, err := zstd.NewReader(file, zstd.WithDecoderMaxMemory(uint64(limits.MaxFrameDumpBytes)))
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	logrus.WithFields(logrus.Fields{
		"function": "OpenFrame",
		"path":     path,
		"width":    width,
		"height":   height,
		"layout":   layout.String(),
		"zstd":     compressed,
	}).Debug("Reading frame dump")

	return ReadFrame(r, width, height, layout)
}
