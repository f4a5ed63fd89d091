package dotcanvas

import (
	"image"
	"image/color"
)

// Binarizer is a closed choice between thresholding and dithering. The
// zero value binarizes with an automatic Otsu threshold.
type Binarizer struct {
	dither    bool
	algorithm DitherAlgorithm
	manual    bool
	cutoff    uint8
}

// ThresholdBinarizer binarizes with a fixed cutoff: a pixel inks iff its
// luma is below t.
func ThresholdBinarizer(t uint8) Binarizer {
	return Binarizer{manual: true, cutoff: t}
}

// OtsuBinarizer binarizes with a cutoff computed per image by maximizing
// inter-class variance. This is the default.
func OtsuBinarizer() Binarizer {
	return Binarizer{}
}

// DitherBinarizer binarizes with the given dithering algorithm.
func DitherBinarizer(alg DitherAlgorithm) Binarizer {
	return Binarizer{dither: true, algorithm: alg}
}

// Binarize reduces a grayscale image to a bitmap of identical pixel
// dimensions. Set bits are inked (dark) dots.
func (bz Binarizer) Binarize(img *image.Gray) *Bitmap {
	if bz.dither {
		return Dither(img, bz.algorithm)
	}
	cutoff := bz.cutoff
	if !bz.manual {
		cutoff = OtsuThreshold(img)
	}
	b := img.Bounds()
	bm := NewBitmap(b.Dx(), b.Dy())
	for y := 0; y < bm.H; y++ {
		for x := 0; x < bm.W; x++ {
			if img.GrayAt(b.Min.X+x, b.Min.Y+y).Y < cutoff {
				bm.Set(x, y, true)
			}
		}
	}
	return bm
}

// Grayscale converts an image to 8-bit gray using the perceptual luma
// weights 0.21 R + 0.72 G + 0.07 B.
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, _ := img.At(x, y).RGBA()
			v := 0.21*float64(r) + 0.72*float64(g) + 0.07*float64(bb)
			gray.SetGray(x, y, color.Gray{Y: uint8(v / 257)})
		}
	}
	return gray
}
