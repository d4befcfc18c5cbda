package comik

import (
	"path"
	"slices"
	"strings"

	"github.com/ben0x539/comik/internal/archive"
)

var imageExtensions = []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp"}

// ImagesOnly is an entry filter that keeps entries with a common raster
// image extension, compared case-insensitively. Metadata such as
// ComicInfo.xml is dropped.
func ImagesOnly(name string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(path.Ext(name)))
}

// SupportedExtensions returns the recognized archive extensions without the
// leading dot.
func SupportedExtensions() []string {
	return archive.Extensions()
}

// IsSupported reports whether path has a recognized archive extension.
// It performs no I/O.
func IsSupported(path string) bool {
	_, err := archive.FormatForPath(path)
	return err == nil
}
