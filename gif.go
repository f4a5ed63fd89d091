package dotcanvas

import (
	"image"
	"image/draw"
	"image/gif"
	"io"
	"time"
)

// PlayGIF draws each frame of a gif to w (usually os.Stdout), repositioning
// the cursor at the start of every frame. Frame delays and disposal methods
// are respected. The options configure the per-frame renderer; the grid is
// sized from the gif's logical screen at 2x4 pixels per cell.
func PlayGIF(w io.Writer, giff *gif.GIF, opts ...Option) error {
	if len(giff.Image) == 0 {
		return nil
	}

	bounds := image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	if bounds.Empty() {
		bounds = giff.Image[0].Bounds()
	}
	cellW := (bounds.Dx() + CellPixelWidth - 1) / CellPixelWidth
	cellH := (bounds.Dy() + CellPixelHeight - 1) / CellPixelHeight
	renderer, err := NewRenderer(cellW, cellH, opts...)
	if err != nil {
		return err
	}
	enc := NewEncoder(w, opts...)
	term := &Xterm{Writer: w}

	// The screen accumulates frames; disposal decides what survives into
	// the next one.
	screen := image.NewRGBA(bounds)
	draw.Draw(screen, bounds, image.White, image.Point{}, draw.Src)

	// DecodeAll reports -1 for gifs without a loop extension; those play
	// every frame exactly once. 0 means loop forever.
	loops := giff.LoopCount
	if loops < 0 {
		loops = 1
	}
	for c := 0; loops == 0 || c < loops; c++ {
		for i, frame := range giff.Image {
			delay := time.After(time.Duration(giff.Delay[i]) * time.Second / 100)

			var restore *image.RGBA
			disposal := byte(gif.DisposalNone)
			if i < len(giff.Disposal) {
				disposal = giff.Disposal[i]
			}
			if disposal == gif.DisposalPrevious {
				restore = image.NewRGBA(bounds)
				copy(restore.Pix, screen.Pix)
			}

			draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

			grid, err := renderer.Render(screen)
			if err != nil {
				return err
			}
			if err := enc.EncodeGrid(grid); err != nil {
				return err
			}

			switch disposal {
			case gif.DisposalBackground:
				draw.Draw(screen, frame.Bounds(), image.White, image.Point{}, draw.Src)
			case gif.DisposalPrevious:
				screen = restore
			}

			<-delay
			term.ResetCursor(cellH)
		}
	}
	return nil
}
