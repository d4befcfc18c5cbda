package archive

import (
	"errors"
	"fmt"
	"os"

	"github.com/ben0x539/comik/internal/comiktype"
)

var (
	errEntryNotFound = errors.New("entry not found")
	errEntryTooLarge = errors.New("entry exceeds size limit")
)

// backend reads members of one container format from an open file.
type backend interface {
	// names lists every non-directory member, in container order.
	names() []string

	// extract returns the uncompressed bytes of the named member.
	extract(name string, maxSize uint64) ([]byte, error)
}

// Archive is an open comic archive.
//
// Archive owns its file handle; Close must be called to release it.
// Archive is not safe for concurrent use.
type Archive struct {
	path    string
	format  Format
	file    *os.File
	backend backend
	index   *Index
	cfg     *config
}

// Open opens the archive at path and indexes its entries.
//
// The container format is determined from the extension before the file is
// touched; unrecognized extensions fail with comiktype.ErrUnsupportedFormat.
// Open and listing failures wrap comiktype.ErrArchiveRead.
func Open(path string, opts ...Option) (*Archive, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	f, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", path, comiktype.ErrArchiveRead, err)
	}

	var b backend
	switch format {
	case FormatZip:
		b, err = newZipBackend(f, cfg)
	case FormatRar:
		b, err = newRarBackend(f)
	default:
		err = comiktype.ErrUnsupportedFormat
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("list %s: %w: %w", path, comiktype.ErrArchiveRead, err)
	}

	return &Archive{
		path:    path,
		format:  format,
		file:    f,
		backend: b,
		index:   NewIndex(b.names()),
		cfg:     cfg,
	}, nil
}

// Path returns the path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// Format returns the container format.
func (a *Archive) Format() Format {
	return a.format
}

// Index returns the sorted entry index.
func (a *Archive) Index() *Index {
	return a.index
}

// Entries returns all member names sorted byte-wise.
func (a *Archive) Entries() []string {
	return a.index.Names()
}

// Extract returns the uncompressed contents of the named entry.
//
// A missing entry, corrupt data, an unsupported compression method, or an
// entry larger than the configured limit fail with comiktype.ErrArchiveRead.
func (a *Archive) Extract(name string) ([]byte, error) {
	if a.file == nil {
		return nil, fmt.Errorf("extract %s: %w: %w", name, comiktype.ErrArchiveRead, os.ErrClosed)
	}
	if _, ok := a.index.Lookup(name); !ok {
		return nil, fmt.Errorf("extract %s: %w: %w", name, comiktype.ErrArchiveRead, errEntryNotFound)
	}
	data, err := a.backend.extract(name, a.cfg.maxEntrySize)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w: %w", name, comiktype.ErrArchiveRead, err)
	}
	return data, nil
}

// Close closes the underlying file. Calling Close more than once is a no-op.
func (a *Archive) Close() error {
	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}
