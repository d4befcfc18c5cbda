package comik

import (
	"fmt"
	"slices"
)

// FileSystemCollection is an ordered set of archive paths.
//
// Comics are not cached: each Comic call opens and lists the archive again.
// Only page bytes are cached, inside each returned comic.
type FileSystemCollection struct {
	name  string
	paths []string
	opts  []Option
}

// NewFileSystemCollection creates a collection over paths. No archive is
// opened until Comic is called. opts apply to every opened comic.
func NewFileSystemCollection(name string, paths []string, opts ...Option) *FileSystemCollection {
	return &FileSystemCollection{
		name:  name,
		paths: slices.Clone(paths),
		opts:  opts,
	}
}

// Name returns the display label.
func (c *FileSystemCollection) Name() string {
	return c.name
}

// Size returns the number of comics.
func (c *FileSystemCollection) Size() int {
	return len(c.paths)
}

// Paths returns a copy of the archive paths in collection order.
func (c *FileSystemCollection) Paths() []string {
	return slices.Clone(c.paths)
}

// Comic opens the comic at index.
func (c *FileSystemCollection) Comic(index int) (ComicProvider, error) {
	if index < 0 || index >= len(c.paths) {
		return nil, fmt.Errorf("comic %d of %d: %w", index, len(c.paths), ErrIndexOutOfRange)
	}
	comic, err := OpenComic(c.paths[index], c.opts...)
	if err != nil {
		return nil, err
	}
	return comic, nil
}

var _ CollectionProvider = (*FileSystemCollection)(nil)
