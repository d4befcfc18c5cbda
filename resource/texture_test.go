package resource

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ben0x539/comik"
	"github.com/ben0x539/comik/internal/testutil"
)

func TestTextureLoaderNormalizes(t *testing.T) {
	t.Parallel()

	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range gray.Pix {
		gray.Pix[i] = 0x80
	}

	paletted := image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{testutil.Green})

	// Non-zero origin, as produced by SubImage.
	offset := testutil.SolidImage(6, 6, testutil.Blue).SubImage(image.Rect(2, 3, 5, 6))

	tests := []struct {
		name   string
		img    image.Image
		w, h   int
		expect color.NRGBA
	}{
		{name: "gray", img: gray, w: 3, h: 2, expect: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}},
		{name: "paletted", img: paletted, w: 2, h: 2, expect: testutil.Green},
		{name: "sub image", img: offset, w: 3, h: 3, expect: testutil.Blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tex, err := TextureLoader{}.Load(tt.img)
			require.NoError(t, err)
			assert.Equal(t, tt.w, tex.Width())
			assert.Equal(t, tt.h, tex.Height())
			assert.Equal(t, tt.w*4, tex.Stride())
			assert.Len(t, tex.Pix(), tt.w*tt.h*4)
			assert.Equal(t, image.Point{}, tex.Image().Bounds().Min)
			assert.Equal(t, tt.expect, testutil.ColorAt(tex.Image()))
		})
	}
}

func TestTextureLoaderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		loader TextureLoader
		img    image.Image
	}{
		{name: "nil image", img: nil},
		{name: "empty image", img: image.NewNRGBA(image.Rectangle{})},
		{name: "too many pixels", loader: TextureLoader{MaxPixels: 10}, img: testutil.SolidImage(4, 4, testutil.Red)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.loader.Load(tt.img)
			assert.ErrorIs(t, err, comik.ErrLoad)
		})
	}
}

func TestTextureCacheWithPages(t *testing.T) {
	t.Parallel()

	c := NewTextureCache()
	page := comik.NewPage("a.cbz", "001.png", testutil.SolidImage(4, 4, testutil.Red))

	tex, err := c.Load(KeyOf(page), page.Image())
	require.NoError(t, err)
	assert.Equal(t, 4, tex.Width())

	// A page with the same name from another archive is a separate entry.
	other := comik.NewPage("b.cbz", "001.png", testutil.SolidImage(2, 2, testutil.Blue))
	assert.False(t, c.Has(KeyOf(other)))
	otherTex, err := c.Load(KeyOf(other), other.Image())
	require.NoError(t, err)
	assert.Equal(t, testutil.Blue, testutil.ColorAt(otherTex.Image()))
	assert.Equal(t, testutil.Red, testutil.ColorAt(tex.Image()))
}
