package archive

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// zipBackend reads zip containers through their central directory.
type zipBackend struct {
	files map[string]*zip.File
	order []string
}

func newZipBackend(f *os.File, cfg *config) (*zipBackend, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, err
	}

	var dopts []zstd.DOption
	if cfg.decoderMaxMemory > 0 {
		dopts = append(dopts, zstd.WithDecoderMaxMemory(cfg.decoderMaxMemory))
	}
	zr.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor(dopts...))

	b := &zipBackend{
		files: make(map[string]*zip.File, len(zr.File)),
	}
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		// First occurrence wins for duplicated names.
		if _, dup := b.files[zf.Name]; dup {
			continue
		}
		b.files[zf.Name] = zf
		b.order = append(b.order, zf.Name)
	}
	return b, nil
}

func (b *zipBackend) names() []string {
	return b.order
}

func (b *zipBackend) extract(name string, maxSize uint64) ([]byte, error) {
	zf, ok := b.files[name]
	if !ok {
		return nil, errEntryNotFound
	}
	if zf.UncompressedSize64 > maxSize {
		return nil, errEntryTooLarge
	}
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return readAllWithLimit(rc, maxSize)
}
