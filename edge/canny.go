package edge

// Sobel first-derivative and smoothing kernels per aperture.
var sobelKernels = map[int]struct{ deriv, smooth []int32 }{
	3: {deriv: []int32{-1, 0, 1}, smooth: []int32{1, 2, 1}},
	5: {deriv: []int32{-1, -2, 0, 2, 1}, smooth: []int32{1, 4, 6, 4, 1}},
	7: {deriv: []int32{-1, -4, -5, 0, 5, 4, 1}, smooth: []int32{1, 6, 15, 20, 15, 6, 1}},
}

// tan(22.5°) in 15-bit fixed point, used to bucket gradient directions.
const (
	cannyShift = 15
	tg22       = 13573
)

// Pixel classes during suppression and hysteresis.
const (
	classNone uint8 = iota
	classWeak
	classEdge
)

// sobel returns the horizontal and vertical derivatives of g using
// replicated borders.
func sobel(g *Gray, aperture int) (dx, dy []int32) {
	k := sobelKernels[aperture]
	r := len(k.deriv) / 2
	w, h := g.Width, g.Height
	dx = make([]int32, w*h)
	dy = make([]int32, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sx, sy int32
			for j := -r; j <= r; j++ {
				row := replicate(y+j, h) * w
				for i := -r; i <= r; i++ {
					v := int32(g.Pix[row+replicate(x+i, w)])
					sx += v * k.deriv[i+r] * k.smooth[j+r]
					sy += v * k.smooth[i+r] * k.deriv[j+r]
				}
			}
			dx[y*w+x] = sx
			dy[y*w+x] = sy
		}
	}
	return dx, dy
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// canny runs gradient computation, non-maximum suppression and hysteresis
// on an already smoothed image and returns the 0/255 edge mask.
func canny(g *Gray, low, high int32, aperture int) *Gray {
	w, h := g.Width, g.Height
	out := NewGray(w, h)
	if w == 0 || h == 0 {
		return out
	}

	class, seeds := suppress(g, low, high, aperture)
	hysteresis(class, seeds, w, h)

	for i, c := range class {
		if c == classEdge {
			out.Pix[i] = 255
		}
	}
	return out
}

// suppress classifies every pixel by its L1 gradient magnitude. A pixel is
// a candidate when its magnitude is strictly above low and it is a local
// maximum across the gradient direction, bucketed into horizontal,
// vertical and the two diagonals. Candidates strictly above high become
// edges and are returned as hysteresis seeds; the rest are weak.
func suppress(g *Gray, low, high int32, aperture int) (class []uint8, seeds []int) {
	w, h := g.Width, g.Height
	dx, dy := sobel(g, aperture)
	mag := make([]int32, w*h)
	for i := range mag {
		mag[i] = abs32(dx[i]) + abs32(dy[i])
	}
	magAt := func(x, y int) int32 {
		if x < 0 || y < 0 || x >= w || y >= h {
			return 0
		}
		return mag[y*w+x]
	}

	class = make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			m := mag[i]
			if m <= low {
				continue
			}

			ax := int64(abs32(dx[i]))
			ay := int64(abs32(dy[i])) << cannyShift
			tg22x := ax * tg22

			var isMax bool
			switch {
			case ay < tg22x:
				isMax = m > magAt(x-1, y) && m >= magAt(x+1, y)
			case ay > tg22x+(ax<<(cannyShift+1)):
				isMax = m > magAt(x, y-1) && m >= magAt(x, y+1)
			default:
				s := 1
				if (dx[i] ^ dy[i]) < 0 {
					s = -1
				}
				isMax = m > magAt(x-s, y-1) && m > magAt(x+s, y+1)
			}
			if !isMax {
				continue
			}

			if m > high {
				class[i] = classEdge
				seeds = append(seeds, i)
			} else {
				class[i] = classWeak
			}
		}
	}
	return class, seeds
}

// hysteresis promotes every weak pixel that is 8-connected, directly or
// through other promoted pixels, to one of the seeds.
func hysteresis(class []uint8, seeds []int, w, h int) {
	stack := seeds
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w
		for ny := max(y-1, 0); ny <= min(y+1, h-1); ny++ {
			for nx := max(x-1, 0); nx <= min(x+1, w-1); nx++ {
				j := ny*w + nx
				if class[j] == classWeak {
					class[j] = classEdge
					stack = append(stack, j)
				}
			}
		}
	}
}
