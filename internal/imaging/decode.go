// Package imaging decodes page images by sniffing their content.
//
// The format is detected from the leading bytes, never from the entry name.
// Registered formats: PNG, JPEG, GIF, WebP, BMP, TIFF.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/ben0x539/comik/internal/comiktype"
)

// ErrEmptyData is returned when there are no bytes to decode.
var ErrEmptyData = errors.New("imaging: empty data")

// Decode decodes an image from data, detecting the format from its header.
// It returns the decoded image and the registered format name.
//
// Failures wrap comiktype.ErrDecode.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: %w", comiktype.ErrDecode, ErrEmptyData)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", comiktype.ErrDecode, err)
	}
	return img, format, nil
}

// DecodeConfig reports the format and dimensions of data without decoding
// the pixels.
func DecodeConfig(data []byte) (image.Config, string, error) {
	if len(data) == 0 {
		return image.Config{}, "", fmt.Errorf("%w: %w", comiktype.ErrDecode, ErrEmptyData)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("%w: %w", comiktype.ErrDecode, err)
	}
	return cfg, format, nil
}
