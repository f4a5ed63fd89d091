package dotcanvas

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
)

// DecodeImage decodes a raster image from r and composites any alpha onto
// an opaque white background, since binarization and color quantization
// both assume opaque RGB. Decode failures are wrapped in a SourceError.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &SourceError{Source: "image stream", Err: err}
	}
	return Opaque(img), nil
}

// OpenImage reads an image from a local file path or an http(s) URL,
// mirroring how the CLI accepts its input argument.
func OpenImage(src string) (image.Image, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := http.Get(src)
		if err != nil {
			return nil, &SourceError{Source: src, Err: err}
		}
		defer resp.Body.Close()
		img, _, err := image.Decode(resp.Body)
		if err != nil {
			return nil, &SourceError{Source: src, Err: err}
		}
		return Opaque(img), nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, &SourceError{Source: src, Err: err}
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &SourceError{Source: src, Err: err}
	}
	return Opaque(img), nil
}

// Opaque composites img onto a white background. Images that are already
// fully opaque are returned unchanged.
func Opaque(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}
