// Command dotshapes demonstrates feeding a vector rasterizer into the
// braille pipeline: shapes are drawn with draw2d into an RGBA image and
// rendered to the terminal like any other raster source.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/newjordan/dotcanvas"
)

func main() {
	cols, lines, _ := dotcanvas.DetectSize(int(os.Stdout.Fd()))
	lines--

	// Rasterize at 4x the dot resolution so the shapes stay crisp after
	// the pipeline scales them down.
	w := cols * dotcanvas.CellPixelWidth * 4
	h := lines * dotcanvas.CellPixelHeight * 4
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(canvas)
	gc.SetStrokeColor(color.Black)
	gc.SetFillColor(color.RGBA{R: 64, G: 64, B: 192, A: 255})
	gc.SetLineWidth(float64(h) / 60)

	cx, cy := float64(w)/2, float64(h)/2
	r := cy * 0.8
	draw2dkit.Circle(gc, cx, cy, r)
	gc.FillStroke()

	gc.SetFillColor(color.RGBA{R: 192, G: 64, B: 64, A: 255})
	draw2dkit.Rectangle(gc, cx-r/2, cy-r/2, cx+r/2, cy+r/2)
	gc.FillStroke()

	gc.MoveTo(0, float64(h))
	gc.LineTo(float64(w), 0)
	gc.Stroke()

	renderer, err := dotcanvas.NewRenderer(cols, lines,
		dotcanvas.WithDither(dotcanvas.FloydSteinberg),
		dotcanvas.WithCapability(dotcanvas.DetectCapability(os.Getenv)),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	grid, err := renderer.Render(canvas)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	enc := dotcanvas.NewEncoder(os.Stdout,
		dotcanvas.WithCapability(dotcanvas.DetectCapability(os.Getenv)))
	if err := enc.EncodeGrid(grid); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
