package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// ZipEntry describes one member of a test zip archive.
type ZipEntry struct {
	Name string
	Data []byte

	// Method is the zip compression method; zero means zip.Deflate.
	// Use zstd.ZipMethodWinZip for zstd.
	Method uint16
}

// WriteZip writes a zip archive named name into dir and returns its path.
// Entries are written in the given order.
func WriteZip(tb testing.TB, dir, name string, entries []ZipEntry) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zstd.ZipMethodWinZip, zstd.ZipCompressor())
	for _, e := range entries {
		method := e.Method
		if method == 0 {
			method = zip.Deflate
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: method})
		if err != nil {
			tb.Fatalf("create entry %s: %v", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			tb.Fatalf("write entry %s: %v", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("close zip: %v", err)
	}
	return path
}

// WritePNGZip writes a zip archive whose entries are solid-colour PNGs.
func WritePNGZip(tb testing.TB, dir, name string, pages map[string][]byte) string {
	tb.Helper()
	entries := make([]ZipEntry, 0, len(pages))
	for n, data := range pages {
		entries = append(entries, ZipEntry{Name: n, Data: data})
	}
	return WriteZip(tb, dir, name, entries)
}
