package archive

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nwaples/rardecode/v2"
)

// rarBackend reads rar containers. Rar archives are solid streams without a
// central directory, so listing is a full pass over the headers and each
// extraction rewinds the file and scans forward to the entry.
type rarBackend struct {
	file  *os.File
	order []string
}

func newRarBackend(f *os.File) (*rarBackend, error) {
	b := &rarBackend{file: f}
	r, err := b.rewind()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for {
		hdr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if hdr.IsDir {
			continue
		}
		// First occurrence wins for duplicated names, as extract scans
		// from the start.
		if _, dup := seen[hdr.Name]; dup {
			continue
		}
		seen[hdr.Name] = struct{}{}
		b.order = append(b.order, hdr.Name)
	}
	return b, nil
}

func (b *rarBackend) rewind() (*rardecode.Reader, error) {
	if _, err := b.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}
	return rardecode.NewReader(b.file)
}

func (b *rarBackend) names() []string {
	return b.order
}

func (b *rarBackend) extract(name string, maxSize uint64) ([]byte, error) {
	r, err := b.rewind()
	if err != nil {
		return nil, err
	}
	for {
		hdr, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil, errEntryNotFound
		}
		if err != nil {
			return nil, err
		}
		if hdr.IsDir || hdr.Name != name {
			continue
		}
		return readAllWithLimit(r, maxSize)
	}
}
