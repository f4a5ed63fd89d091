package dotcanvas

// Bitmap is a 1-bit-per-pixel image produced by binarization. A set pixel
// is an inked dot. Bitmaps are ephemeral: the dot mapper consumes them
// immediately after binarization.
type Bitmap struct {
	W, H int
	bits []bool
}

// NewBitmap allocates a cleared w x h bitmap.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{W: w, H: h, bits: make([]bool, w*h)}
}

// At reports whether the pixel at (x, y) is set. Out-of-range coordinates
// read as unset, which gives the dot mapper its zero padding for free.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	return b.bits[y*b.W+x]
}

// Set assigns the pixel at (x, y). Out-of-range coordinates are ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	b.bits[y*b.W+x] = on
}

// Count returns the number of set pixels.
func (b *Bitmap) Count() int {
	n := 0
	for _, on := range b.bits {
		if on {
			n++
		}
	}
	return n
}
