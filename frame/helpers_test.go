package frame

import "github.com/opd-ai/edgepreview/yuv"

// createTestFrame builds a tightly packed I420 frame with a deterministic
// pattern and a crop covering the whole frame.
func createTestFrame(width, height int) *SourceFrame {
	cw, ch := (width+1)/2, (height+1)/2
	f := &SourceFrame{
		Width:  width,
		Height: height,
		Y:      Plane{Data: make([]byte, width*height), RowStride: width, PixelStride: 1},
		U:      Plane{Data: make([]byte, cw*ch), RowStride: cw, PixelStride: 1},
		V:      Plane{Data: make([]byte, cw*ch), RowStride: cw, PixelStride: 1},
		Crop:   FullCrop(width, height),
	}
	for i := range f.Y.Data {
		f.Y.Data[i] = byte(16 + (i*37)%220)
	}
	for i := range f.U.Data {
		f.U.Data[i] = byte(64 + (i*29)%128)
		f.V.Data[i] = byte(200 - (i*13)%128)
	}
	return f
}

// expectedPixel converts the source sample at luma coordinates (sx, sy)
// the slow way, straight from the plane layout.
func expectedPixel(f *SourceFrame, sx, sy int) yuv.Pixel {
	cb, cr := f.chroma()
	y := f.Y.Data[sy*f.Y.RowStride+sx*f.Y.step()]
	u := cb.Data[(sy/2)*cb.RowStride+(sx/2)*cb.step()]
	v := cr.Data[(sy/2)*cr.RowStride+(sx/2)*cr.step()]
	return yuv.ToPixel(y, u, v)
}
