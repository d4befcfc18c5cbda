package comik

import "image"

// CollectionProvider gives index-based access to a fixed set of comics.
type CollectionProvider interface {
	// Name returns the display label, which may be empty.
	Name() string

	// Size returns the number of comics.
	Size() int

	// Comic opens the comic at index. The caller owns the result and must
	// close it.
	Comic(index int) (ComicProvider, error)
}

// ComicProvider gives index-based access to the pages of one comic.
type ComicProvider interface {
	// Title returns the comic's display title.
	Title() string

	// Len returns the number of pages.
	Len() int

	// Page returns the decoded page at index.
	Page(index int) (PageProvider, error)

	// Close releases the comic's resources.
	Close() error
}

// PageProvider is one decoded page.
type PageProvider interface {
	// FileName returns the archive member name of the page.
	FileName() string

	// Source identifies the archive the page came from.
	Source() string

	// Image returns the decoded image.
	Image() image.Image
}
