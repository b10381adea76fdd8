package frame

import "github.com/opd-ai/edgepreview/yuv"

// Map converts the cropped region of src to RGB and writes it into dst,
// rotated by 90° and downscaled by integer ratios. Both sides are validated
// before the first write, so a failed call leaves dst untouched. A crop or
// destination with zero area is not an error and performs no writes.
//
// The returned Transform describes the region that was written.
func Map(src *SourceFrame, dst *Buffer) (Transform, error) {
	if err := src.Validate(); err != nil {
		return Transform{}, err
	}
	if err := dst.Validate(); err != nil {
		return Transform{}, err
	}

	t := NewTransform(src.Crop, dst.Width, dst.Height, dst.Stride)
	if t.Empty() {
		return t, nil
	}

	cb, cr := src.chroma()
	yStep, cbStep, crStep := src.Y.step(), cb.step(), cr.step()

	for y := 0; y < t.OutHeight; y++ {
		_, sy := t.Source(0, y)
		yRow := src.Y.Data[sy*src.Y.RowStride:]
		cbRow := cb.Data[(sy>>1)*cb.RowStride:]
		crRow := cr.Data[(sy>>1)*cr.RowStride:]

		for x := 0; x < t.OutWidth; x++ {
			sx, _ := t.Source(x, y)
			c := sx >> 1
			p := yuv.ToPixel(yRow[sx*yStep], cbRow[c*cbStep], crRow[c*crStep])
			dst.Pix[t.Dest(x, y)] = uint32(p)
		}
	}
	return t, nil
}
