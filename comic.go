package comik

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ben0x539/comik/cache"
	"github.com/ben0x539/comik/internal/archive"
	"github.com/ben0x539/comik/internal/imaging"
)

// source lists and extracts archive entries.
// *archive.Archive is the production implementation.
type source interface {
	Entries() []string
	Extract(name string) ([]byte, error)
	Close() error
}

// FileSystemComic is a comic backed by an archive file on disk.
//
// The page order is fixed when the comic is opened: page i always refers to
// the same entry. Raw page bytes are cached per page index for the comic's
// lifetime; decoding happens on every Page call.
//
// FileSystemComic is safe for concurrent use. Extractions are serialized on
// the archive handle.
type FileSystemComic struct {
	path  string
	title string
	index *archive.Index
	log   *slog.Logger

	mu    sync.Mutex // guards src and pages
	src   source
	pages cache.Cache
}

// OpenComic opens the archive at path and lists its pages.
//
// It fails with ErrUnsupportedFormat, before touching the file, when the
// extension is not recognized, and with ErrArchiveRead when the archive
// cannot be opened or listed.
func OpenComic(path string, opts ...Option) (*FileSystemComic, error) {
	cfg := newConfig(opts)
	a, err := archive.Open(path, cfg.archiveOpts...)
	if err != nil {
		return nil, err
	}
	c := newComic(path, a, cfg)
	c.log.Debug("opened comic", "path", path, "format", a.Format().String(), "pages", c.Len())
	return c, nil
}

func newComic(path string, src source, cfg *config) *FileSystemComic {
	names := src.Entries()
	if cfg.filter != nil {
		kept := names[:0:0]
		for _, name := range names {
			if cfg.filter(name) {
				kept = append(kept, name)
			}
		}
		names = kept
	}
	return &FileSystemComic{
		path:  path,
		title: filepath.Base(path),
		index: archive.NewIndex(names),
		log:   cfg.log().With("comic", filepath.Base(path)),
		src:   src,
		pages: cfg.pageCache(),
	}
}

// Title returns the archive's file name.
func (c *FileSystemComic) Title() string {
	return c.title
}

// Path returns the path the comic was opened from.
func (c *FileSystemComic) Path() string {
	return c.path
}

// Len returns the number of pages.
func (c *FileSystemComic) Len() int {
	return c.index.Len()
}

// Names returns the page entry names in page order.
func (c *FileSystemComic) Names() []string {
	return c.index.Names()
}

// Index returns the sorted page index.
func (c *FileSystemComic) Index() *archive.Index {
	return c.index
}

// Page returns the decoded page at index.
//
// The page's bytes come from the raw page cache when present; otherwise
// they are extracted and cached. Bytes stay cached even if decoding fails.
func (c *FileSystemComic) Page(index int) (PageProvider, error) {
	name, data, err := c.rawPage(index)
	if err != nil {
		return nil, err
	}

	img, format, err := imaging.Decode(data)
	if err != nil {
		c.log.Debug("page decode failed", "page", index, "name", name, "error", err)
		return nil, fmt.Errorf("page %d (%s) of %s: %w", index, name, c.title, err)
	}

	return &Page{
		fileName: name,
		source:   c.path,
		format:   format,
		img:      img,
	}, nil
}

// PageConfig reports the image format and dimensions of the page at index
// without decoding its pixels. The page's bytes are cached like in Page.
func (c *FileSystemComic) PageConfig(index int) (image.Config, string, error) {
	name, data, err := c.rawPage(index)
	if err != nil {
		return image.Config{}, "", err
	}
	cfg, format, err := imaging.DecodeConfig(data)
	if err != nil {
		return image.Config{}, "", fmt.Errorf("page %d (%s) of %s: %w", index, name, c.title, err)
	}
	return cfg, format, nil
}

func (c *FileSystemComic) rawPage(index int) (string, []byte, error) {
	name, ok := c.index.Name(index)
	if !ok {
		return "", nil, fmt.Errorf("page %d of %s (%d pages): %w", index, c.title, c.index.Len(), ErrIndexOutOfRange)
	}
	data, err := c.pageBytes(index, name)
	if err != nil {
		return "", nil, err
	}
	return name, data, nil
}

func (c *FileSystemComic) pageBytes(index int, name string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if data, ok := c.pages.Get(index); ok {
		c.log.Debug("page cache hit", "page", index, "name", name)
		return data, nil
	}
	if c.src == nil {
		return nil, fmt.Errorf("page %d of %s: %w: %w", index, c.title, ErrArchiveRead, os.ErrClosed)
	}

	data, err := c.src.Extract(name)
	if err != nil {
		if !errors.Is(err, ErrArchiveRead) {
			err = fmt.Errorf("%w: %w", ErrArchiveRead, err)
		}
		return nil, fmt.Errorf("page %d of %s: %w", index, c.title, err)
	}
	c.log.Debug("extracted page", "page", index, "name", name, "bytes", len(data))

	if err := c.pages.Put(index, data); err != nil {
		// Not fatal: the page is still served, just not cached.
		c.log.Warn("page cache put failed", "page", index, "error", err)
	}
	return data, nil
}

// Close closes the archive. Cached page bytes remain readable.
func (c *FileSystemComic) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.src == nil {
		return nil
	}
	err := c.src.Close()
	c.src = nil
	return err
}

// Interface compliance.
var (
	_ ComicProvider = (*FileSystemComic)(nil)
	_ source        = (*archive.Archive)(nil)
)
