package edgepreview

import (
	"fmt"

	"github.com/opd-ai/edgepreview/frame"
)

// Summary describes one processed frame. It is informational only.
type Summary struct {
	BufferWidth   int
	BufferHeight  int
	BufferStride  int
	OutHeight     int
	OutWidth      int
	Crop          frame.CropRect
	YRowStride    int
	UVRowStride   int
	UVPixelStride int
	EdgesApplied  bool
}

func newSummary(src *frame.SourceFrame, dst *frame.Buffer, t frame.Transform) *Summary {
	return &Summary{
		BufferWidth:   dst.Width,
		BufferHeight:  dst.Height,
		BufferStride:  dst.Stride,
		OutHeight:     t.OutHeight,
		OutWidth:      t.OutWidth,
		Crop:          src.Crop,
		YRowStride:    src.Y.RowStride,
		UVRowStride:   src.U.RowStride,
		UVPixelStride: src.U.PixelStride,
	}
}

// String renders the summary as a short multi-line report.
func (s *Summary) String() string {
	return fmt.Sprintf("Frame summary:\n"+
		" | buf h = %d & buf w = %d & buf row stride = %d\n"+
		" | final h = %d & w = %d\n"+
		" | Crop Rect b = %d t = %d l = %d r = %d\n"+
		" | row stride y = %d & row stride uv = %d & pixel stride uv = %d\n"+
		" | edges = %t",
		s.BufferHeight, s.BufferWidth, s.BufferStride,
		s.OutHeight, s.OutWidth,
		s.Crop.Bottom, s.Crop.Top, s.Crop.Left, s.Crop.Right,
		s.YRowStride, s.UVRowStride, s.UVPixelStride,
		s.EdgesApplied)
}
