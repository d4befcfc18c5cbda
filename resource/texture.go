package resource

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/ben0x539/comik"
)

// Texture is a display-ready page: tightly packed, straight-alpha RGBA8
// pixels with the origin at (0, 0).
type Texture struct {
	img *image.NRGBA
}

// Width returns the width in pixels.
func (t *Texture) Width() int { return t.img.Rect.Dx() }

// Height returns the height in pixels.
func (t *Texture) Height() int { return t.img.Rect.Dy() }

// Stride returns the number of bytes per row.
func (t *Texture) Stride() int { return t.img.Stride }

// Pix returns the pixel data, 4 bytes per pixel in R, G, B, A order.
// The slice aliases the texture and must be treated as read-only.
func (t *Texture) Pix() []byte { return t.img.Pix }

// Image returns the texture as an image.
func (t *Texture) Image() image.Image { return t.img }

// TextureLoader converts decoded images into Textures.
type TextureLoader struct {
	// MaxPixels rejects images with more pixels than this. Zero means no
	// limit.
	MaxPixels int
}

var (
	errNilImage   = errors.New("nil image")
	errEmptyImage = errors.New("empty image")
	errTooLarge   = errors.New("image too large")
)

// Load normalizes img into straight-alpha RGBA8.
func (l TextureLoader) Load(img image.Image) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: %w", comik.ErrLoad, errNilImage)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %w", comik.ErrLoad, errEmptyImage)
	}
	if l.MaxPixels > 0 && b.Dx()*b.Dy() > l.MaxPixels {
		return nil, fmt.Errorf("%w: %w: %dx%d", comik.ErrLoad, errTooLarge, b.Dx(), b.Dy())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	return &Texture{img: dst}, nil
}

var _ Loader[*Texture] = TextureLoader{}
