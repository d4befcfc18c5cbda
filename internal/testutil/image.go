package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// Common fixture colours.
var (
	Red   = color.NRGBA{R: 0xff, A: 0xff}
	Green = color.NRGBA{G: 0xff, A: 0xff}
	Blue  = color.NRGBA{B: 0xff, A: 0xff}
)

// SolidImage returns a w×h image filled with c.
func SolidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

// SolidPNG returns a PNG-encoded 4×4 image filled with c.
func SolidPNG(tb testing.TB, c color.Color) []byte {
	tb.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, SolidImage(4, 4, c)); err != nil {
		tb.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// ColorAt returns the non-premultiplied colour of img at its top-left pixel.
func ColorAt(img image.Image) color.NRGBA {
	b := img.Bounds()
	return color.NRGBAModel.Convert(img.At(b.Min.X, b.Min.Y)).(color.NRGBA)
}
