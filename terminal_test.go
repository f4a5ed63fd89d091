package dotcanvas_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/newjordan/dotcanvas"
)

var _ = Describe("Terminal", func() {
	Describe("Xterm", func() {
		It("moves the cursor to the top of the frame", func() {
			var buf bytes.Buffer
			term := &dotcanvas.Xterm{Writer: &buf}
			term.ResetCursor(12)
			Expect(buf.String()).To(Equal("\033[999D\033[12A"))
		})

		It("hides and shows the cursor", func() {
			var buf bytes.Buffer
			term := &dotcanvas.Xterm{Writer: &buf}
			term.ShowCursor(false)
			Expect(buf.String()).To(Equal("\033[?25l"))

			buf.Reset()
			term.ShowCursor(true)
			Expect(buf.String()).To(Equal("\033[?12l\033[?25h"))
		})
	})

	Describe("DetectCapability", func() {
		env := func(vars map[string]string) func(string) string {
			return func(k string) string { return vars[k] }
		}

		It("detects truecolor from COLORTERM", func() {
			Expect(dotcanvas.DetectCapability(env(map[string]string{
				"COLORTERM": "truecolor",
			}))).To(Equal(dotcanvas.TrueColor))
			Expect(dotcanvas.DetectCapability(env(map[string]string{
				"COLORTERM": "24bit",
			}))).To(Equal(dotcanvas.TrueColor))
		})

		It("detects 256-color terminals from TERM", func() {
			Expect(dotcanvas.DetectCapability(env(map[string]string{
				"TERM": "xterm-256color",
			}))).To(Equal(dotcanvas.ANSI256))
		})

		It("detects base color terminals from TERM", func() {
			Expect(dotcanvas.DetectCapability(env(map[string]string{
				"TERM": "xterm",
			}))).To(Equal(dotcanvas.ANSI16))
			Expect(dotcanvas.DetectCapability(env(map[string]string{
				"TERM": "screen",
			}))).To(Equal(dotcanvas.ANSI16))
		})

		It("falls back to monochrome for unknown environments", func() {
			Expect(dotcanvas.DetectCapability(env(map[string]string{}))).To(Equal(dotcanvas.Monochrome))
			Expect(dotcanvas.DetectCapability(env(map[string]string{
				"TERM": "dumb",
			}))).To(Equal(dotcanvas.Monochrome))
			Expect(dotcanvas.DetectCapability(nil)).To(Equal(dotcanvas.Monochrome))
		})
	})
})
