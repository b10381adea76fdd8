// Package yuv converts YUV 4:2:0 samples into packed 32-bit RGB pixels.
//
// The conversion uses BT.601 video-range coefficients in 10-bit fixed point.
// Every channel is computed in a wide integer range, clamped to
// [0, MaxChannelValue] and shifted down to 8 bits before packing, so no
// input triple can spill into a neighbouring channel of the packed word.
package yuv

import "image/color"

// MaxChannelValue is 2^18 - 1, the ceiling applied to each fixed-point
// channel before it is normalized to eight bits.
const MaxChannelValue = 262143

const (
	coeffY  = 1192 // 1.164 * 1024
	coeffRV = 1634 // 1.596 * 1024
	coeffGV = 833  // 0.813 * 1024
	coeffGU = 400  // 0.391 * 1024
	coeffBU = 2066 // 2.018 * 1024

	fixedShift = 10
	chromaZero = 128
	lumaFloor  = 16
)

// Pixel is a packed 32-bit pixel. Channels are laid out so that the
// lowest-addressed byte on a little-endian host holds red, matching
// RGBA_8888 and RGBX_8888 surfaces.
type Pixel uint32

// Pack builds a Pixel from its four channels.
func Pack(r, g, b, a uint8) Pixel {
	return Pixel(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p >> 16) }

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// RGBA returns the pixel as a color.RGBA.
func (p Pixel) RGBA() color.RGBA {
	return color.RGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

// ToRGB converts one luma sample and its Cb (u) and Cr (v) chroma samples
// to 8-bit RGB. Chroma is centered on 128.
func ToRGB(y, u, v uint8) (r, g, b uint8) {
	ny := int32(y) - lumaFloor
	if ny < 0 {
		ny = 0
	}
	nu := int32(u) - chromaZero
	nv := int32(v) - chromaZero

	nr := coeffY*ny + coeffRV*nv
	ng := coeffY*ny - coeffGV*nv - coeffGU*nu
	nb := coeffY*ny + coeffBU*nu

	return normalize(nr), normalize(ng), normalize(nb)
}

// ToPixel converts a Y/Cb/Cr triple into an opaque packed Pixel.
func ToPixel(y, u, v uint8) Pixel {
	r, g, b := ToRGB(y, u, v)
	return Pack(r, g, b, 0xff)
}

func normalize(c int32) uint8 {
	c = clamp(c, 0, MaxChannelValue)
	return uint8(c >> fixedShift)
}

func clamp(v, lo, hi int32) int32 {
	return max(lo, min(v, hi))
}
