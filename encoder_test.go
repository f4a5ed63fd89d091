package dotcanvas_test

import (
	"bytes"
	"image"
	"image/color"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/newjordan/dotcanvas"
)

var _ = Describe("Encoder", func() {
	Describe("EncodeGrid", func() {
		It("writes one braille rune per cell and a newline per row", func() {
			g, _ := dotcanvas.NewGrid(3, 2)
			g.SetMask(0, 0, 0x01)
			g.SetMask(1, 0, 0xFF)
			g.SetMask(2, 1, 0x80)

			var buf bytes.Buffer
			Expect(dotcanvas.NewEncoder(&buf).EncodeGrid(g)).To(Succeed())

			Expect(buf.String()).To(Equal("⠁⣿⠀\n⠀⠀⢀\n"))
		})

		It("interleaves color escapes and resets each colored row", func() {
			g, _ := dotcanvas.NewGrid(2, 1)
			g.EnableColor()
			g.SetMask(0, 0, 0xFF)
			g.SetMask(1, 0, 0xFF)
			g.SetCellColor(0, 0, dotcanvas.RGB{R: 255})
			g.SetCellColor(1, 0, dotcanvas.RGB{R: 255})

			var buf bytes.Buffer
			enc := dotcanvas.NewEncoder(&buf, dotcanvas.WithCapability(dotcanvas.TrueColor))
			Expect(enc.EncodeGrid(g)).To(Succeed())

			// Same color on both cells: escape once, reset once.
			Expect(buf.String()).To(Equal("\x1b[38;2;255;0;0m⣿⣿\x1b[0m\n"))
		})

		It("resets before uncolored cells in a colored row", func() {
			g, _ := dotcanvas.NewGrid(2, 1)
			g.EnableColor()
			g.SetMask(0, 0, 0xFF)
			g.SetMask(1, 0, 0xFF)
			g.SetCellColor(0, 0, dotcanvas.RGB{B: 255})

			var buf bytes.Buffer
			enc := dotcanvas.NewEncoder(&buf, dotcanvas.WithCapability(dotcanvas.TrueColor))
			Expect(enc.EncodeGrid(g)).To(Succeed())

			Expect(buf.String()).To(Equal("\x1b[38;2;0;0;255m⣿\x1b[0m⣿\n"))
		})

		It("emits no escapes for monochrome grids", func() {
			g, _ := dotcanvas.NewGrid(2, 2)
			g.EnableColor()
			g.SetCellColor(0, 0, dotcanvas.RGB{R: 9})

			var buf bytes.Buffer
			Expect(dotcanvas.NewEncoder(&buf).EncodeGrid(g)).To(Succeed())
			Expect(buf.String()).NotTo(ContainSubstring("\x1b["))
		})
	})

	Describe("Encode", func() {
		It("renders a solid black image to full cells", func() {
			img := image.NewRGBA(image.Rect(0, 0, 4, 8))
			for y := 0; y < 8; y++ {
				for x := 0; x < 4; x++ {
					img.Set(x, y, color.Black)
				}
			}

			var buf bytes.Buffer
			Expect(dotcanvas.Encode(&buf, img)).To(Succeed())
			Expect(buf.String()).To(Equal("⣿⣿\n⣿⣿\n"))
		})

		It("renders a solid white image to empty cells", func() {
			img := image.NewRGBA(image.Rect(0, 0, 4, 4))
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					img.Set(x, y, color.White)
				}
			}

			var buf bytes.Buffer
			Expect(dotcanvas.Encode(&buf, img)).To(Succeed())
			Expect(strings.TrimRight(buf.String(), "\n")).To(Equal("⠀⠀"))
		})

		It("rounds ragged dimensions up to whole cells", func() {
			img := image.NewRGBA(image.Rect(0, 0, 3, 5))
			for y := 0; y < 5; y++ {
				for x := 0; x < 3; x++ {
					img.Set(x, y, color.Black)
				}
			}

			var buf bytes.Buffer
			Expect(dotcanvas.Encode(&buf, img)).To(Succeed())
			// 3x5 pixels need a 2x2 cell grid.
			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			Expect(lines).To(HaveLen(2))
			Expect([]rune(lines[0])).To(HaveLen(2))
		})
	})
})
