package comik

import (
	"image"
	"strings"
)

// Page is an immutable decoded page.
//
// Equality and ordering consider only the file name, never pixel data.
type Page struct {
	fileName string
	source   string
	format   string
	img      image.Image
}

// NewPage creates a Page from an already decoded image.
func NewPage(source, fileName string, img image.Image) *Page {
	return &Page{fileName: fileName, source: source, img: img}
}

// FileName returns the archive member name.
func (p *Page) FileName() string { return p.fileName }

// Source returns the path of the archive the page was read from.
func (p *Page) Source() string { return p.source }

// Image returns the decoded image.
func (p *Page) Image() image.Image { return p.img }

// Format returns the detected image format ("png", "jpeg", ...), or "" when
// the page was built with NewPage.
func (p *Page) Format() string { return p.format }

// Equal reports whether both pages have the same file name. A nil page,
// typed or not, equals nothing.
func (p *Page) Equal(other PageProvider) bool {
	if other == nil {
		return false
	}
	if op, ok := other.(*Page); ok && op == nil {
		return false
	}
	return p.fileName == other.FileName()
}

// Compare orders pages by file name.
func (p *Page) Compare(other PageProvider) int {
	return ComparePages(p, other)
}

// ComparePages orders pages by file name, byte-wise. It is suitable for
// slices.SortFunc.
func ComparePages(a, b PageProvider) int {
	return strings.Compare(a.FileName(), b.FileName())
}

var _ PageProvider = (*Page)(nil)
