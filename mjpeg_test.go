package dotcanvas

import (
	"bytes"
	"image"
	"image/jpeg"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MJPEGReader", func() {
	It("splits the stream into frames on the end-of-image marker", func() {
		src := image.NewRGBA(image.Rect(0, 0, 8, 8))
		var jp bytes.Buffer
		Expect(jpeg.Encode(&jp, src, nil)).To(Succeed())

		data := append(append([]byte{}, jp.Bytes()...), jp.Bytes()...)
		reader := MJPEGReader{Reader: bytes.NewReader(data)}

		count := 0
		for f := range reader.ReadAll() {
			Expect(f.err).NotTo(HaveOccurred())
			Expect(f.img.Bounds().Dx()).To(Equal(8))
			Expect(f.img.Bounds().Dy()).To(Equal(8))
			count++
		}
		Expect(count).To(Equal(2))
	})

	It("surfaces decode failures and stops", func() {
		reader := MJPEGReader{Reader: bytes.NewReader([]byte{0x00, 0xff, 0xd9})}

		var errs []error
		for f := range reader.ReadAll() {
			errs = append(errs, f.err)
		}
		Expect(errs).To(HaveLen(1))
		Expect(errs[0]).To(HaveOccurred())
	})

	It("ends cleanly on a truncated tail", func() {
		reader := MJPEGReader{Reader: bytes.NewReader([]byte{0xff, 0xd8, 0xff})}

		received := 0
		for range reader.ReadAll() {
			received++
		}
		Expect(received).To(BeZero())
	})
})
