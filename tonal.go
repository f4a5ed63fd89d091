package dotcanvas

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Tonal adjustment factor ranges. 1.0 is neutral for all three.
const (
	MinBrightness = 0.0
	MaxBrightness = 2.0
	MinContrast   = 0.0
	MaxContrast   = 2.0
	MinGamma      = 0.1
	MaxGamma      = 3.0
)

const neutralEpsilon = 1e-9

func neutral(f float64) bool {
	return math.Abs(f-1.0) < neutralEpsilon
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// AdjustBrightness scales every channel by factor. 0 gives black, 1 the
// original image, 2 doubles each channel (clamped).
func AdjustBrightness(img image.Image, factor float64) (image.Image, error) {
	if factor < MinBrightness || factor > MaxBrightness {
		return nil, &ParamRangeError{Param: "brightness", Value: factor, Min: MinBrightness, Max: MaxBrightness}
	}
	if neutral(factor) {
		return img, nil
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clampChannel(float64(c.R) * factor),
			G: clampChannel(float64(c.G) * factor),
			B: clampChannel(float64(c.B) * factor),
			A: c.A,
		}
	}), nil
}

// AdjustContrast scales the distance of every channel from the midpoint.
// 0 gives flat gray, 1 the original image, 2 doubles the spread (clamped).
func AdjustContrast(img image.Image, factor float64) (image.Image, error) {
	if factor < MinContrast || factor > MaxContrast {
		return nil, &ParamRangeError{Param: "contrast", Value: factor, Min: MinContrast, Max: MaxContrast}
	}
	if neutral(factor) {
		return img, nil
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clampChannel((float64(c.R)-128)*factor + 128),
			G: clampChannel((float64(c.G)-128)*factor + 128),
			B: clampChannel((float64(c.B)-128)*factor + 128),
			A: c.A,
		}
	}), nil
}

// AdjustGamma applies gamma correction. Factors below 1 darken, above 1
// lighten.
func AdjustGamma(img image.Image, factor float64) (image.Image, error) {
	if factor < MinGamma || factor > MaxGamma {
		return nil, &ParamRangeError{Param: "gamma", Value: factor, Min: MinGamma, Max: MaxGamma}
	}
	if neutral(factor) {
		return img, nil
	}
	return imaging.AdjustGamma(img, factor), nil
}
