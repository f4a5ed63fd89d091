package dotcanvas

// Grid is a rectangular matrix of braille cells. Each cell packs its 2x4
// dots into a single uint8 mask, keeping memory at one byte per cell and
// making the unicode conversion a single addition.
//
// A Grid is not safe for concurrent mutation; callers rendering from
// multiple goroutines must either serialize access or give each goroutine
// its own grid.
type Grid struct {
	width  int
	height int
	masks  []uint8
	colors []cellColor // nil until EnableColor
}

type cellColor struct {
	color RGB
	set   bool
}

// NewGrid allocates a zero-filled grid of width x height cells. Both
// dimensions must be in 1..MaxGridDim.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 || width > MaxGridDim || height > MaxGridDim {
		return nil, &DimensionsError{Width: width, Height: height}
	}
	return &Grid{
		width:  width,
		height: height,
		masks:  make([]uint8, width*height),
	}, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

func (g *Grid) checkCell(x, y int) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return &BoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return nil
}

// SetDot sets or clears a single dot. x,y address a cell; dot is the dot
// number 0..7 within it.
func (g *Grid) SetDot(x, y, dot int, on bool) error {
	if err := g.checkCell(x, y); err != nil {
		return err
	}
	if dot < 0 || dot > 7 {
		return &DotIndexError{Index: dot}
	}
	i := y*g.width + x
	if on {
		g.masks[i] |= 1 << uint(dot)
	} else {
		g.masks[i] &^= 1 << uint(dot)
	}
	return nil
}

// GetDot reports whether a single dot is set.
func (g *Grid) GetDot(x, y, dot int) (bool, error) {
	if err := g.checkCell(x, y); err != nil {
		return false, err
	}
	if dot < 0 || dot > 7 {
		return false, &DotIndexError{Index: dot}
	}
	return g.masks[y*g.width+x]&(1<<uint(dot)) != 0, nil
}

// Mask returns the raw dot mask of one cell.
func (g *Grid) Mask(x, y int) (uint8, error) {
	if err := g.checkCell(x, y); err != nil {
		return 0, err
	}
	return g.masks[y*g.width+x], nil
}

// SetMask overwrites the raw dot mask of one cell.
func (g *Grid) SetMask(x, y int, mask uint8) error {
	if err := g.checkCell(x, y); err != nil {
		return err
	}
	g.masks[y*g.width+x] = mask
	return nil
}

// Clear zeroes every dot mask and every cell color without reallocating,
// so repeated render-clear cycles reuse the same backing store.
func (g *Grid) Clear() {
	for i := range g.masks {
		g.masks[i] = 0
	}
	for i := range g.colors {
		g.colors[i] = cellColor{}
	}
}

// ClearRegion zeroes the dot masks and colors of a w x h cell region whose
// top-left corner is (x, y). The whole region must lie inside the grid.
func (g *Grid) ClearRegion(x, y, w, h int) error {
	if w < 0 || h < 0 {
		return &BoundsError{X: x + w, Y: y + h, Width: g.width, Height: g.height}
	}
	if err := g.checkCell(x, y); err != nil {
		return err
	}
	if x+w > g.width || y+h > g.height {
		return &BoundsError{X: x + w - 1, Y: y + h - 1, Width: g.width, Height: g.height}
	}
	for cy := y; cy < y+h; cy++ {
		row := cy * g.width
		for cx := x; cx < x+w; cx++ {
			g.masks[row+cx] = 0
			if g.colors != nil {
				g.colors[row+cx] = cellColor{}
			}
		}
	}
	return nil
}

// Resize reallocates the grid to the new dimensions. Cells inside both the
// old and new bounds keep their dot masks and colors; cells introduced by
// growth start zeroed; cells outside the new bounds are dropped.
func (g *Grid) Resize(width, height int) error {
	if width < 1 || height < 1 || width > MaxGridDim || height > MaxGridDim {
		return &DimensionsError{Width: width, Height: height}
	}
	masks := make([]uint8, width*height)
	var colors []cellColor
	if g.colors != nil {
		colors = make([]cellColor, width*height)
	}
	minW, minH := g.width, g.height
	if width < minW {
		minW = width
	}
	if height < minH {
		minH = height
	}
	for y := 0; y < minH; y++ {
		copy(masks[y*width:y*width+minW], g.masks[y*g.width:y*g.width+minW])
		if colors != nil {
			copy(colors[y*width:y*width+minW], g.colors[y*g.width:y*g.width+minW])
		}
	}
	g.width, g.height = width, height
	g.masks = masks
	g.colors = colors
	return nil
}

// Rune returns the unicode braille character for one cell.
func (g *Grid) Rune(x, y int) (rune, error) {
	if err := g.checkCell(x, y); err != nil {
		return 0, err
	}
	return BrailleRune(g.masks[y*g.width+x]), nil
}

// Runes returns the whole grid as rows of braille characters.
func (g *Grid) Runes() [][]rune {
	rows := make([][]rune, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]rune, g.width)
		for x := 0; x < g.width; x++ {
			row[x] = BrailleRune(g.masks[y*g.width+x])
		}
		rows[y] = row
	}
	return rows
}

// EnableColor allocates the per-cell color store. Every cell starts with no
// color set. Calling it on a grid that already has color support is a no-op.
func (g *Grid) EnableColor() {
	if g.colors == nil {
		g.colors = make([]cellColor, g.width*g.height)
	}
}

// ColorEnabled reports whether the per-cell color store is allocated.
func (g *Grid) ColorEnabled() bool { return g.colors != nil }

// SetCellColor assigns a color to one cell. The call is ignored when color
// support is disabled.
func (g *Grid) SetCellColor(x, y int, c RGB) error {
	if err := g.checkCell(x, y); err != nil {
		return err
	}
	if g.colors == nil {
		return nil
	}
	g.colors[y*g.width+x] = cellColor{color: c, set: true}
	return nil
}

// CellColor returns the color of one cell. ok is false both when color
// support is disabled and when no color was assigned to the cell; the two
// states are kept distinct internally (nil store vs. unset flag) but read
// the same to renderers.
func (g *Grid) CellColor(x, y int) (c RGB, ok bool, err error) {
	if err := g.checkCell(x, y); err != nil {
		return RGB{}, false, err
	}
	if g.colors == nil {
		return RGB{}, false, nil
	}
	cc := g.colors[y*g.width+x]
	return cc.color, cc.set, nil
}
