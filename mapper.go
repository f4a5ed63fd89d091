package dotcanvas

// MapBitmap writes a binarized bitmap onto a grid, one 2x4 pixel block per
// cell, following the braille dot ordering. Pixels beyond the bitmap read
// as unset, so inputs not evenly divisible by the block size are
// zero-padded rather than rejected.
func MapBitmap(bm *Bitmap, g *Grid) {
	for cy := 0; cy < g.height; cy++ {
		for cx := 0; cx < g.width; cx++ {
			var mask uint8
			px := cx * CellPixelWidth
			py := cy * CellPixelHeight
			for y := 0; y < CellPixelHeight; y++ {
				for x := 0; x < CellPixelWidth; x++ {
					if bm.At(px+x, py+y) {
						mask |= 1 << dotIndex(x, y)
					}
				}
			}
			g.masks[cy*g.width+cx] = mask
		}
	}
}
