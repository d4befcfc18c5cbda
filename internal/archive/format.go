package archive

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ben0x539/comik/internal/comiktype"
)

// Format identifies the container format of an archive.
type Format = comiktype.Format

// Format constants.
const (
	FormatUnknown = comiktype.FormatUnknown
	FormatZip     = comiktype.FormatZip
	FormatRar     = comiktype.FormatRar
)

// extensions maps recognized file extensions to container formats.
// Matching is case-sensitive.
var extensions = map[string]Format{
	"zip": FormatZip,
	"cbz": FormatZip,
	"rar": FormatRar,
	"cbr": FormatRar,
}

// FormatForPath returns the container format for path based solely on its
// extension. It performs no I/O.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return FormatUnknown, fmt.Errorf("open %s: %w", path, comiktype.ErrUnsupportedFormat)
}

// Extensions returns the recognized archive extensions, without the dot.
func Extensions() []string {
	return []string{"cbr", "cbz", "rar", "zip"}
}
