package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ben0x539/comik/internal/comiktype"
	"github.com/ben0x539/comik/internal/testutil"
)

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Format
		wantErr error
	}{
		{path: "a.zip", want: FormatZip},
		{path: "dir/b.cbz", want: FormatZip},
		{path: "c.rar", want: FormatRar},
		{path: "d.cbr", want: FormatRar},
		{path: "e.txt", wantErr: comiktype.ErrUnsupportedFormat},
		{path: "f.CBZ", wantErr: comiktype.ErrUnsupportedFormat},
		{path: "noext", wantErr: comiktype.ErrUnsupportedFormat},
		{path: "archive.zip.bak", wantErr: comiktype.ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			got, err := FormatForPath(tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenUnsupportedExtensionDoesNoIO(t *testing.T) {
	t.Parallel()

	// The file does not exist; a stat or open would produce a different error.
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Open(path)
	require.ErrorIs(t, err, comiktype.ErrUnsupportedFormat)
	assert.NotErrorIs(t, err, comiktype.ErrArchiveRead)
	assert.NotErrorIs(t, err, os.ErrNotExist)
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing.cbz"))
	require.ErrorIs(t, err, comiktype.ErrArchiveRead)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenCorruptContainer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"bad.cbz", "bad.cbr"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("definitely not an archive"), 0o600))

		_, err := Open(path)
		require.ErrorIs(t, err, comiktype.ErrArchiveRead, name)
	}
}

func TestOpenListsSortedEntries(t *testing.T) {
	t.Parallel()

	path := testutil.WriteZip(t, t.TempDir(), "book.cbz", []testutil.ZipEntry{
		{Name: "010.png", Data: []byte("ten")},
		{Name: "chapter/"},
		{Name: "002.png", Data: []byte("two")},
		{Name: "001.png", Data: []byte("one")},
		{Name: "chapter/003.png", Data: []byte("three")},
	})

	a, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, FormatZip, a.Format())
	assert.Equal(t, path, a.Path())
	assert.Equal(t, []string{"001.png", "002.png", "010.png", "chapter/003.png"}, a.Entries())
}

func TestExtract(t *testing.T) {
	t.Parallel()

	big := bytes.Repeat([]byte("x"), 4096)
	path := testutil.WriteZip(t, t.TempDir(), "book.zip", []testutil.ZipEntry{
		{Name: "deflate.bin", Data: []byte("deflated content")},
		{Name: "zstd.bin", Data: []byte("zstd content"), Method: zstd.ZipMethodWinZip},
		{Name: "big.bin", Data: big},
	})

	a, err := Open(path, WithMaxEntrySize(1024), WithDecoderMaxMemory(64<<20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	t.Run("deflate entry", func(t *testing.T) {
		data, err := a.Extract("deflate.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte("deflated content"), data)
	})

	t.Run("zstd entry", func(t *testing.T) {
		data, err := a.Extract("zstd.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte("zstd content"), data)
	})

	t.Run("missing entry", func(t *testing.T) {
		_, err := a.Extract("nope.bin")
		require.ErrorIs(t, err, comiktype.ErrArchiveRead)
	})

	t.Run("entry over size limit", func(t *testing.T) {
		_, err := a.Extract("big.bin")
		require.ErrorIs(t, err, comiktype.ErrArchiveRead)
	})
}

func TestExtractAfterClose(t *testing.T) {
	t.Parallel()

	path := testutil.WriteZip(t, t.TempDir(), "book.zip", []testutil.ZipEntry{
		{Name: "001.png", Data: []byte("one")},
	})
	a, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "second close is a no-op")

	_, err = a.Extract("001.png")
	require.ErrorIs(t, err, comiktype.ErrArchiveRead)
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestReadAllWithLimit(t *testing.T) {
	t.Parallel()

	data, err := readAllWithLimit(bytes.NewReader([]byte("abcd")), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), data)

	_, err = readAllWithLimit(bytes.NewReader([]byte("abcde")), 4)
	assert.ErrorIs(t, err, errEntryTooLarge)
}
