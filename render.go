package dotcanvas

import (
	"image"
	"math"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithBrightness sets the brightness factor (0..2, 1 is neutral).
func WithBrightness(f float64) Option {
	return func(r *Renderer) { r.brightness = f }
}

// WithContrast sets the contrast factor (0..2, 1 is neutral).
func WithContrast(f float64) Option {
	return func(r *Renderer) { r.contrast = f }
}

// WithGamma sets the gamma factor (0.1..3, 1 is neutral).
func WithGamma(f float64) Option {
	return func(r *Renderer) { r.gamma = f }
}

// WithDither binarizes with the given dithering algorithm instead of the
// default automatic threshold.
func WithDither(alg DitherAlgorithm) Option {
	return func(r *Renderer) { r.binarizer = DitherBinarizer(alg) }
}

// WithThreshold binarizes with a fixed manual cutoff instead of the
// default automatic one.
func WithThreshold(t uint8) Option {
	return func(r *Renderer) { r.binarizer = ThresholdBinarizer(t) }
}

// WithInvert swaps inked and blank dots.
func WithInvert() Option {
	return func(r *Renderer) { r.invert = true }
}

// WithStretch disables letterboxing: the source is stretched to exactly
// fill the grid, ignoring its aspect ratio.
func WithStretch() Option {
	return func(r *Renderer) { r.stretch = true }
}

// WithCapability sets the terminal color tier. Tiers above Monochrome make
// Render populate per-cell colors.
func WithCapability(c Capability) Option {
	return func(r *Renderer) { r.capability = c }
}

// Renderer runs the full raster pipeline: resize, tonal adjustment,
// binarization and dot mapping into a Grid, plus per-cell color
// quantization when a color tier is requested.
type Renderer struct {
	cellW, cellH int
	brightness   float64
	contrast     float64
	gamma        float64
	binarizer    Binarizer
	invert       bool
	stretch      bool
	capability   Capability
}

// NewRenderer creates a renderer targeting a cellW x cellH cell grid.
func NewRenderer(cellW, cellH int, opts ...Option) (*Renderer, error) {
	if cellW < 1 || cellH < 1 || cellW > MaxGridDim || cellH > MaxGridDim {
		return nil, &DimensionsError{Width: cellW, Height: cellH}
	}
	r := &Renderer{
		cellW:      cellW,
		cellH:      cellH,
		brightness: 1.0,
		contrast:   1.0,
		gamma:      1.0,
		binarizer:  OtsuBinarizer(),
		capability: Monochrome,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) validate() error {
	if r.brightness < MinBrightness || r.brightness > MaxBrightness {
		return &ParamRangeError{Param: "brightness", Value: r.brightness, Min: MinBrightness, Max: MaxBrightness}
	}
	if r.contrast < MinContrast || r.contrast > MaxContrast {
		return &ParamRangeError{Param: "contrast", Value: r.contrast, Min: MinContrast, Max: MaxContrast}
	}
	if r.gamma < MinGamma || r.gamma > MaxGamma {
		return &ParamRangeError{Param: "gamma", Value: r.gamma, Min: MinGamma, Max: MaxGamma}
	}
	return nil
}

// Render runs the pipeline and returns the populated grid.
func (r *Renderer) Render(img image.Image) (*Grid, error) {
	fitted, err := FitToGrid(img, r.cellW, r.cellH, !r.stretch)
	if err != nil {
		return nil, err
	}
	adjusted, err := r.adjust(fitted)
	if err != nil {
		return nil, err
	}

	bm := r.binarizer.Binarize(Grayscale(adjusted))
	if r.invert {
		for y := 0; y < bm.H; y++ {
			for x := 0; x < bm.W; x++ {
				bm.Set(x, y, !bm.At(x, y))
			}
		}
	}

	grid, err := NewGrid(r.cellW, r.cellH)
	if err != nil {
		return nil, err
	}
	MapBitmap(bm, grid)

	if r.capability != Monochrome {
		grid.EnableColor()
		r.colorize(grid, bm, fitted)
	}
	return grid, nil
}

// colorize assigns each cell the root-mean-square average of the source
// color under its inked dots. Cells with no inked dots keep no color.
func (r *Renderer) colorize(grid *Grid, bm *Bitmap, src image.Image) {
	min := src.Bounds().Min
	for cy := 0; cy < grid.height; cy++ {
		for cx := 0; cx < grid.width; cx++ {
			var sr, sg, sb uint64
			n := 0
			for y := 0; y < CellPixelHeight; y++ {
				for x := 0; x < CellPixelWidth; x++ {
					px := cx*CellPixelWidth + x
					py := cy*CellPixelHeight + y
					if !bm.At(px, py) {
						continue
					}
					cr, cg, cb, _ := src.At(min.X+px, min.Y+py).RGBA()
					cr, cg, cb = cr>>8, cg>>8, cb>>8
					sr += uint64(cr * cr)
					sg += uint64(cg * cg)
					sb += uint64(cb * cb)
					n++
				}
			}
			if n == 0 {
				continue
			}
			grid.SetCellColor(cx, cy, RGB{
				R: uint8(math.Sqrt(float64(sr) / float64(n))),
				G: uint8(math.Sqrt(float64(sg) / float64(n))),
				B: uint8(math.Sqrt(float64(sb) / float64(n))),
			})
		}
	}
}

func (r *Renderer) adjust(img image.Image) (image.Image, error) {
	img, err := AdjustBrightness(img, r.brightness)
	if err != nil {
		return nil, err
	}
	img, err = AdjustContrast(img, r.contrast)
	if err != nil {
		return nil, err
	}
	return AdjustGamma(img, r.gamma)
}
