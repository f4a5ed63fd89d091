package dotcanvas

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Cell pixel geometry: every braille cell addresses 2x4 dots.
const (
	CellPixelWidth  = 2
	CellPixelHeight = 4
)

// extremeAspect is the width:height ratio beyond which FitToGrid trades
// filter quality for speed. Very wide or tall sources would otherwise pay
// for an expensive filter on a huge intermediate axis.
const extremeAspect = 8.0

// FitToGrid scales img to the exact pixel dimensions implied by a grid of
// cellW x cellH cells. With preserveAspect the image is scaled by the
// largest factor that fits, centered, and letterboxed onto a white
// background; otherwise it is stretched to fill.
func FitToGrid(img image.Image, cellW, cellH int, preserveAspect bool) (image.Image, error) {
	if cellW < 1 || cellH < 1 || cellW > MaxGridDim || cellH > MaxGridDim {
		return nil, &DimensionsError{Width: cellW, Height: cellH}
	}
	targetW := cellW * CellPixelWidth
	targetH := cellH * CellPixelHeight

	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()
	if srcW == 0 || srcH == 0 {
		return imaging.New(targetW, targetH, color.White), nil
	}

	filter := resize.Lanczos3
	aspect := float64(srcW) / float64(srcH)
	if aspect > extremeAspect || aspect < 1/extremeAspect {
		filter = resize.Bilinear
	}

	if !preserveAspect {
		return resize.Resize(uint(targetW), uint(targetH), img, filter), nil
	}

	scaleX := float64(targetW) / float64(srcW)
	scaleY := float64(targetH) / float64(srcH)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	fitW := int(float64(srcW) * scale)
	fitH := int(float64(srcH) * scale)
	if fitW < 1 {
		fitW = 1
	}
	if fitH < 1 {
		fitH = 1
	}
	scaled := resize.Resize(uint(fitW), uint(fitH), img, filter)

	canvas := imaging.New(targetW, targetH, color.White)
	return imaging.PasteCenter(canvas, scaled), nil
}
