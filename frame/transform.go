package frame

// Transform is the composed rotate-crop-scale index map from output
// coordinates to source and destination positions.
//
// The output image is OutWidth x OutHeight in source orientation. It is
// written rotated by 90°: output column x becomes destination row x and
// output row y becomes destination column OutHeight-1-y. Because of the
// rotation the destination width bounds the source height and vice versa.
type Transform struct {
	Crop        CropRect
	OutWidth    int
	OutHeight   int
	RatioWidth  int
	RatioHeight int
	DstStride   int
}

// NewTransform computes the mapping of crop into a destination of the given
// dimensions. Ratios are integer quotients, so downscaling is floor-sampled
// and any remainder of the crop past the last sampled row or column is
// dropped. The output never exceeds the crop, which keeps both ratios at
// least 1: a destination larger than the crop is filled 1:1 and the rest of
// it is left as it was.
func NewTransform(crop CropRect, dstWidth, dstHeight, dstStride int) Transform {
	srcHeight := max(crop.Height(), 0)
	srcWidth := max(crop.Width(), 0)

	t := Transform{
		Crop:      crop,
		OutHeight: max(min(dstWidth, srcHeight), 0),
		OutWidth:  max(min(dstHeight, srcWidth), 0),
		DstStride: dstStride,
	}
	if t.OutHeight > 0 {
		t.RatioHeight = srcHeight / t.OutHeight
	}
	if t.OutWidth > 0 {
		t.RatioWidth = srcWidth / t.OutWidth
	}
	return t
}

// Empty reports whether the mapping produces no pixels.
func (t Transform) Empty() bool {
	return t.OutWidth == 0 || t.OutHeight == 0
}

// Source returns the luma coordinates sampled for output pixel (x, y).
// Chroma coordinates are the same values shifted right by one.
func (t Transform) Source(x, y int) (sx, sy int) {
	return t.Crop.Left + t.RatioWidth*x, t.Crop.Top + t.RatioHeight*y
}

// Dest returns the destination pixel index written for output pixel (x, y).
func (t Transform) Dest(x, y int) int {
	return x*t.DstStride + (t.OutHeight - 1 - y)
}

// DestCols is the number of destination columns the mapping writes.
func (t Transform) DestCols() int { return t.OutHeight }

// DestRows is the number of destination rows the mapping writes.
func (t Transform) DestRows() int { return t.OutWidth }
