package dotcanvas_test

import (
	"errors"
	"image"
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/newjordan/dotcanvas"
)

var _ = Describe("Tonal adjustment", func() {
	newTest := func() *image.RGBA {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		img.Set(0, 0, color.RGBA{R: 100, G: 100, B: 100, A: 255})
		img.Set(1, 0, color.RGBA{R: 200, G: 50, B: 25, A: 255})
		img.Set(0, 1, color.RGBA{R: 0, G: 0, B: 0, A: 255})
		img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		return img
	}

	Describe("range validation", func() {
		It("names the parameter and bounds for brightness", func() {
			_, err := dotcanvas.AdjustBrightness(newTest(), 2.5)

			var rangeErr *dotcanvas.ParamRangeError
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
			Expect(rangeErr.Param).To(Equal("brightness"))
			Expect(rangeErr.Value).To(Equal(2.5))
			Expect(rangeErr.Min).To(Equal(0.0))
			Expect(rangeErr.Max).To(Equal(2.0))
		})

		It("rejects negative contrast", func() {
			_, err := dotcanvas.AdjustContrast(newTest(), -0.1)
			var rangeErr *dotcanvas.ParamRangeError
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
			Expect(rangeErr.Param).To(Equal("contrast"))
		})

		It("bounds gamma to 0.1..3.0", func() {
			var rangeErr *dotcanvas.ParamRangeError
			_, err := dotcanvas.AdjustGamma(newTest(), 0.05)
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
			_, err = dotcanvas.AdjustGamma(newTest(), 3.01)
			Expect(errors.As(err, &rangeErr)).To(BeTrue())
			Expect(rangeErr.Param).To(Equal("gamma"))
		})
	})

	Describe("neutral factors", func() {
		It("returns the input unchanged at exactly 1.0", func() {
			img := newTest()
			out, err := dotcanvas.AdjustBrightness(img, 1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeIdenticalTo(img))

			out, err = dotcanvas.AdjustContrast(img, 1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeIdenticalTo(img))

			out, err = dotcanvas.AdjustGamma(img, 1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(BeIdenticalTo(img))
		})
	})

	Describe("brightness", func() {
		It("darkens to black at factor zero", func() {
			out, err := dotcanvas.AdjustBrightness(newTest(), 0.0)
			Expect(err).NotTo(HaveOccurred())

			r, g, b, _ := out.At(1, 1).RGBA()
			Expect(r).To(BeZero())
			Expect(g).To(BeZero())
			Expect(b).To(BeZero())
		})

		It("scales channels multiplicatively", func() {
			out, err := dotcanvas.AdjustBrightness(newTest(), 1.5)
			Expect(err).NotTo(HaveOccurred())

			r, _, _, _ := out.At(0, 0).RGBA()
			Expect(uint8(r >> 8)).To(BeNumerically("~", 150, 1))
		})
	})

	Describe("contrast", func() {
		It("collapses to mid gray at factor zero", func() {
			out, err := dotcanvas.AdjustContrast(newTest(), 0.0)
			Expect(err).NotTo(HaveOccurred())

			for _, pt := range []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
				r, g, b, _ := out.At(pt.X, pt.Y).RGBA()
				Expect(uint8(r >> 8)).To(Equal(uint8(128)))
				Expect(uint8(g >> 8)).To(Equal(uint8(128)))
				Expect(uint8(b >> 8)).To(Equal(uint8(128)))
			}
		})

		It("pushes channels away from the midpoint when raised", func() {
			out, err := dotcanvas.AdjustContrast(newTest(), 2.0)
			Expect(err).NotTo(HaveOccurred())

			r, _, _, _ := out.At(1, 0).RGBA() // 200 -> (200-128)*2+128 = 272, clamped
			Expect(uint8(r >> 8)).To(Equal(uint8(255)))
			_, _, b, _ := out.At(1, 0).RGBA() // 25 -> (25-128)*2+128 < 0, clamped
			Expect(uint8(b >> 8)).To(BeZero())
		})
	})

	Describe("gamma", func() {
		It("lightens midtones above 1.0 and darkens below", func() {
			light, err := dotcanvas.AdjustGamma(newTest(), 2.0)
			Expect(err).NotTo(HaveOccurred())
			dark, err := dotcanvas.AdjustGamma(newTest(), 0.5)
			Expect(err).NotTo(HaveOccurred())

			lr, _, _, _ := light.At(0, 0).RGBA()
			dr, _, _, _ := dark.At(0, 0).RGBA()
			Expect(lr).To(BeNumerically(">", dr))
		})

		It("keeps black and white fixed", func() {
			out, err := dotcanvas.AdjustGamma(newTest(), 2.0)
			Expect(err).NotTo(HaveOccurred())

			r, _, _, _ := out.At(0, 1).RGBA()
			Expect(r).To(BeZero())
			r, _, _, _ = out.At(1, 1).RGBA()
			Expect(uint8(r >> 8)).To(Equal(uint8(255)))
		})
	})
})
