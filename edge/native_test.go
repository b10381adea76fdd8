package edge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/edgepreview/frame"
	"github.com/opd-ai/edgepreview/yuv"
)

func TestParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, Params{LowThreshold: 30, Ratio: 3, KernelSize: 3}, p)
	assert.Equal(t, 90, p.HighThreshold())
	assert.NoError(t, p.Validate())

	tests := []struct {
		name   string
		params Params
	}{
		{"negative low", Params{LowThreshold: -1, Ratio: 3, KernelSize: 3}},
		{"zero ratio", Params{LowThreshold: 30, Ratio: 0, KernelSize: 3}},
		{"even kernel", Params{LowThreshold: 30, Ratio: 3, KernelSize: 4}},
		{"kernel too large", Params{LowThreshold: 30, Ratio: 3, KernelSize: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.params.Validate(), ErrInvalidParams)
		})
	}

	for _, k := range []int{3, 5, 7} {
		assert.NoError(t, Params{LowThreshold: 10, Ratio: 2, KernelSize: k}.Validate())
	}
}

func TestNative_Grayscale(t *testing.T) {
	tests := []struct {
		name  string
		pixel yuv.Pixel
		want  byte
	}{
		{"white", yuv.Pack(255, 255, 255, 255), 255},
		{"black", yuv.Pack(0, 0, 0, 255), 0},
		{"red", yuv.Pack(255, 0, 0, 255), 76},
		{"green", yuv.Pack(0, 255, 0, 255), 150},
		{"blue", yuv.Pack(0, 0, 255, 255), 29},
		{"alpha ignored", yuv.Pack(255, 255, 255, 0), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := frame.NewBuffer(3, 2, 5, frame.FormatRGBX8888)
			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					buf.Set(x, y, tt.pixel)
				}
			}
			gray, err := Native{}.Grayscale(buf, 3, 2)
			require.NoError(t, err)
			assert.Equal(t, 3, gray.Width)
			assert.Equal(t, 2, gray.Height)
			for _, v := range gray.Pix {
				assert.Equal(t, tt.want, v)
			}
		})
	}
}

func TestNative_GrayscaleRegion(t *testing.T) {
	buf := frame.NewBuffer(4, 4, 6, frame.FormatRGBA8888)

	_, err := Native{}.Grayscale(buf, 5, 4)
	assert.ErrorIs(t, err, ErrRegionOutOfBounds)

	_, err = Native{}.Grayscale(buf, 4, -1)
	assert.ErrorIs(t, err, ErrRegionOutOfBounds)

	buf.Format = frame.FormatUnknown
	_, err = Native{}.Grayscale(buf, 2, 2)
	assert.ErrorIs(t, err, frame.ErrUnsupportedFormat)
}

func TestReflect101(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{-1, 5, 1},
		{-2, 5, 2},
		{5, 5, 3},
		{6, 5, 2},
		{2, 5, 2},
		{0, 1, 0},
		{-1, 1, 0},
		{-1, 2, 1},
		{2, 2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reflect101(tt.i, tt.n), "reflect101(%d, %d)", tt.i, tt.n)
	}
}

func TestBoxBlur3(t *testing.T) {
	flat := grayFrom(5, 4, func(x, y int) byte { return 77 })
	assert.Equal(t, flat.Pix, boxBlur3(flat).Pix)

	step := grayFrom(8, 2, func(x, y int) byte {
		if x < 4 {
			return 0
		}
		return 255
	})
	blurred := boxBlur3(step)
	assert.Equal(t, []byte{0, 0, 0, 85, 170, 255, 255, 255}, blurred.Pix[:8])
	assert.Equal(t, blurred.Pix[:8], blurred.Pix[8:])
}

func TestNative_EdgesVerticalStep(t *testing.T) {
	step := grayFrom(8, 8, func(x, y int) byte {
		if x < 4 {
			return 0
		}
		return 255
	})

	for _, aperture := range []int{3, 5, 7} {
		mask, err := Native{}.Edges(step, 30, 90, aperture)
		require.NoError(t, err)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if x == 3 && aperture == 3 {
					assert.Equal(t, byte(255), mask.At(x, y), "aperture %d (%d,%d)", aperture, x, y)
				}
				if x < 2 || x > 5 {
					assert.Equal(t, byte(0), mask.At(x, y), "aperture %d (%d,%d)", aperture, x, y)
				}
			}
		}
	}
}

func TestNative_EdgesHorizontalStep(t *testing.T) {
	step := grayFrom(8, 8, func(x, y int) byte {
		if y < 4 {
			return 0
		}
		return 255
	})

	mask, err := Native{}.Edges(step, 30, 90, 3)
	require.NoError(t, err)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := byte(0)
			if y == 3 {
				want = 255
			}
			assert.Equal(t, want, mask.At(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestNative_EdgesThresholds(t *testing.T) {
	// The blurred step has a peak L1 magnitude of 680.
	step := grayFrom(8, 8, func(x, y int) byte {
		if x < 4 {
			return 0
		}
		return 255
	})

	tests := []struct {
		name      string
		low, high float64
		edges     bool
	}{
		{"default thresholds", 30, 90, true},
		{"high just below peak", 100, 679, true},
		{"high at peak", 100, 680, false},
		{"low at peak", 680, 2040, false},
		{"swapped thresholds", 90, 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, err := Native{}.Edges(step, tt.low, tt.high, 3)
			require.NoError(t, err)
			found := false
			for _, v := range mask.Pix {
				if v != 0 {
					found = true
				}
			}
			assert.Equal(t, tt.edges, found)
		})
	}
}

func TestNative_EdgesFlat(t *testing.T) {
	flat := grayFrom(16, 9, func(x, y int) byte { return 200 })
	for _, aperture := range []int{3, 5, 7} {
		mask, err := Native{}.Edges(flat, 0, 0, aperture)
		require.NoError(t, err)
		assert.Equal(t, make([]byte, 16*9), mask.Pix)
	}
}

func TestNative_EdgesInvalid(t *testing.T) {
	g := NewGray(4, 4)

	_, err := Native{}.Edges(g, 30, 90, 4)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = Native{}.Edges(g, -1, 90, 3)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = Native{}.Edges(nil, 30, 90, 3)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = Native{}.Edges(&Gray{Pix: make([]byte, 3), Width: 2, Height: 2}, 30, 90, 3)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestNative_EdgesTinyImages(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {0, 3}} {
		g := grayFrom(dims[0], dims[1], func(x, y int) byte { return byte(x * 90) })
		mask, err := Native{}.Edges(g, 30, 90, 3)
		require.NoError(t, err)
		assert.Len(t, mask.Pix, dims[0]*dims[1])
	}
}

func TestHysteresis(t *testing.T) {
	const w, h = 7, 7
	class := make([]uint8, w*h)
	set := func(x, y int, c uint8) { class[y*w+x] = c }

	set(0, 0, classEdge)
	set(1, 1, classWeak) // diagonal neighbour of the seed
	set(2, 1, classWeak) // chained through (1,1)
	set(3, 2, classWeak) // chained through (2,1)
	set(5, 5, classWeak) // isolated
	set(6, 6, classWeak) // connected only to the isolated pixel

	hysteresis(class, []int{0}, w, h)

	assert.Equal(t, classEdge, class[1*w+1])
	assert.Equal(t, classEdge, class[1*w+2])
	assert.Equal(t, classEdge, class[2*w+3])
	assert.Equal(t, classWeak, class[5*w+5])
	assert.Equal(t, classWeak, class[6*w+6])
}

func TestSobel_FlatIsZero(t *testing.T) {
	flat := grayFrom(6, 6, func(x, y int) byte { return 123 })
	for _, aperture := range []int{3, 5, 7} {
		dx, dy := sobel(flat, aperture)
		for i := range dx {
			assert.Zero(t, dx[i])
			assert.Zero(t, dy[i])
		}
	}
}
