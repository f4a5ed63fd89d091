package dotcanvas

import "image"

// DitherAlgorithm selects how grayscale is reduced to on/off dots while
// keeping local dot density close to the source tone.
type DitherAlgorithm int

const (
	// FloydSteinberg diffuses quantization error to four forward
	// neighbors with the classic 7/16, 3/16, 5/16, 1/16 kernel.
	FloydSteinberg DitherAlgorithm = iota
	// Atkinson spreads 6/8 of the error over six neighbors and discards
	// the rest, giving a harder, higher-contrast halftone.
	Atkinson
	// Bayer4x4 thresholds against a tiled 4x4 index matrix. No error is
	// carried between pixels, so output is deterministic per pixel.
	Bayer4x4
)

func (a DitherAlgorithm) String() string {
	switch a {
	case FloydSteinberg:
		return "floyd-steinberg"
	case Atkinson:
		return "atkinson"
	case Bayer4x4:
		return "bayer"
	}
	return "unknown"
}

type kernelTap struct {
	dx, dy int
	num    int
}

// Error diffusion kernels, expressed as neighbor offsets and numerators
// over a per-kernel divisor.
var (
	floydSteinbergKernel = []kernelTap{
		{1, 0, 7},
		{-1, 1, 3}, {0, 1, 5}, {1, 1, 1},
	}
	atkinsonKernel = []kernelTap{
		{1, 0, 1}, {2, 0, 1},
		{-1, 1, 1}, {0, 1, 1}, {1, 1, 1},
		{0, 2, 1},
	}
)

// bayerMatrix is the standard 4x4 ordered dither index matrix.
var bayerMatrix = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Dither converts a grayscale image to a bitmap of identical dimensions.
// A set bit means an inked (dark) dot.
func Dither(img *image.Gray, alg DitherAlgorithm) *Bitmap {
	if alg == Bayer4x4 {
		return ditherOrdered(img)
	}
	kernel, div := floydSteinbergKernel, 16
	if alg == Atkinson {
		kernel, div = atkinsonKernel, 8
	}
	return ditherDiffuse(img, kernel, div)
}

func ditherDiffuse(img *image.Gray, kernel []kernelTap, div int) *Bitmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	bm := NewBitmap(w, h)

	// Work on a copy of the samples so error carry never mutates the
	// caller's image.
	buf := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf[y*w+x] = int(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			old := buf[y*w+x]
			quantized := 0
			if old >= 128 {
				quantized = 255
			} else {
				bm.Set(x, y, true)
			}
			qerr := old - quantized
			for _, t := range kernel {
				nx, ny := x+t.dx, y+t.dy
				if nx < 0 || nx >= w || ny >= h {
					continue
				}
				buf[ny*w+nx] += qerr * t.num / div
			}
		}
	}
	return bm
}

func ditherOrdered(img *image.Gray) *Bitmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	bm := NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := int(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			// Scale the matrix index to a 0..255 cutoff so pure
			// black always inks and pure white never does.
			threshold := (bayerMatrix[y%4][x%4] + 1) * 255 / 16
			if v < threshold {
				bm.Set(x, y, true)
			}
		}
	}
	return bm
}
