package dotcanvas

import (
	"bufio"
	"image"
	"io"
)

// Encoder writes grids to a terminal stream as braille characters, one
// line feed per cell row, interleaving color escapes when a color tier is
// active.
type Encoder struct {
	w    io.Writer
	opts []Option
	cap  Capability
}

// NewEncoder provides an Encoder. The options are applied to the renderer
// used by Encode; WithCapability additionally controls the escapes emitted
// by EncodeGrid.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	enc := &Encoder{w: w, opts: opts}
	probe := Renderer{capability: Monochrome}
	for _, opt := range opts {
		opt(&probe)
	}
	enc.cap = probe.capability
	return enc
}

// Encode renders img sized to its own pixel bounds and writes it out. The
// grid covers the bounds at one cell per 2x4 pixels, rounded up; ragged
// sources are stretched the extra pixel rather than letterboxed. Use a
// Renderer directly for explicit geometry and tonal control.
func (enc *Encoder) Encode(img image.Image) error {
	cellW := (img.Bounds().Dx() + CellPixelWidth - 1) / CellPixelWidth
	cellH := (img.Bounds().Dy() + CellPixelHeight - 1) / CellPixelHeight
	opts := append([]Option{WithStretch()}, enc.opts...)
	r, err := NewRenderer(cellW, cellH, opts...)
	if err != nil {
		return err
	}
	grid, err := r.Render(img)
	if err != nil {
		return err
	}
	return enc.EncodeGrid(grid)
}

// EncodeGrid writes a populated grid. Color escapes are emitted only when
// they differ from the previous cell's, and colors are reset at the end of
// every row so the line feed never bleeds a background color.
func (enc *Encoder) EncodeGrid(grid *Grid) error {
	w := bufio.NewWriter(enc.w)
	for y := 0; y < grid.Height(); y++ {
		current := ""
		for x := 0; x < grid.Width(); x++ {
			mask, err := grid.Mask(x, y)
			if err != nil {
				return err
			}
			escape := ""
			if enc.cap != Monochrome {
				if c, ok, _ := grid.CellColor(x, y); ok {
					escape = c.Foreground(enc.cap)
				}
			}
			if escape != current {
				if escape == "" {
					if _, err := w.WriteString(Reset); err != nil {
						return err
					}
				} else {
					if _, err := w.WriteString(escape); err != nil {
						return err
					}
				}
				current = escape
			}
			if _, err := w.WriteRune(BrailleRune(mask)); err != nil {
				return err
			}
		}
		if current != "" {
			if _, err := w.WriteString(Reset); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Encode renders img with default options (auto threshold, letterbox
// aspect handling disabled, monochrome) and writes it to w.
func Encode(w io.Writer, img image.Image) error {
	return NewEncoder(w).Encode(img)
}
