package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ben0x539/comik"
	"github.com/ben0x539/comik/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeComic(t *testing.T) string {
	t.Helper()
	return testutil.WriteZip(t, t.TempDir(), "vol1.cbz", []testutil.ZipEntry{
		{Name: "010.png", Data: testutil.SolidPNG(t, testutil.Blue)},
		{Name: "001.png", Data: testutil.SolidPNG(t, testutil.Red)},
		{Name: "ComicInfo.xml", Data: []byte("<ComicInfo/>")},
	})
}

func TestLs(t *testing.T) {
	t.Parallel()

	path := writeComic(t)

	out, err := run(t, "ls", path)
	require.NoError(t, err)
	assert.Contains(t, out, "vol1.cbz (3 pages)")
	assert.Less(t, bytes.Index([]byte(out), []byte("001.png")), bytes.Index([]byte(out), []byte("010.png")))
	assert.Contains(t, out, "ComicInfo.xml")

	out, err = run(t, "--images-only", "ls", path)
	require.NoError(t, err)
	assert.Contains(t, out, "vol1.cbz (2 pages)")
	assert.NotContains(t, out, "ComicInfo.xml")
}

func TestLsUnsupported(t *testing.T) {
	t.Parallel()

	_, err := run(t, "ls", filepath.Join(t.TempDir(), "notes.txt"))
	require.ErrorIs(t, err, comik.ErrUnsupportedFormat)
}

func TestInfoReportsUndecodablePages(t *testing.T) {
	t.Parallel()

	path := writeComic(t)

	out, err := run(t, "info", path)
	require.Error(t, err)
	assert.Contains(t, out, "001.png  4x4")
	assert.Contains(t, out, "010.png  4x4")
	assert.Contains(t, out, "error:")

	out, err = run(t, "--images-only", "info", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "error:")
}

func TestExport(t *testing.T) {
	t.Parallel()

	path := writeComic(t)
	dst := filepath.Join(t.TempDir(), "page.png")

	_, err := run(t, "export", path, "1", "-o", dst)
	require.NoError(t, err)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, testutil.Blue, testutil.ColorAt(img))
}

func TestExportOutOfRange(t *testing.T) {
	t.Parallel()

	path := writeComic(t)

	_, err := run(t, "export", path, "3", "-o", filepath.Join(t.TempDir(), "page.png"))
	require.ErrorIs(t, err, comik.ErrIndexOutOfRange)
}

func TestExportReportsWriteFailure(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	path := writeComic(t)

	_, err := run(t, "export", path, "0", "-o", "/dev/full")
	require.Error(t, err)
}

func TestInfoReportsFormat(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--images-only", "info", writeComic(t))
	require.NoError(t, err)
	assert.Contains(t, out, "001.png  4x4  png")
}
