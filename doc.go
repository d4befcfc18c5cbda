// Package comik reads comic book archives lazily and caches what it reads.
//
// A [CollectionProvider] is an ordered set of comics. Each [ComicProvider]
// is one archive (zip/cbz or rar/cbr) whose member entries, sorted byte-wise
// by name, are its pages. A [PageProvider] pairs an entry name with the
// decoded image.
//
// # Quick Start
//
//	col := comik.NewFileSystemCollection("", []string{"vol1.cbz", "vol2.cbr"})
//	comic, err := col.Comic(0)
//	if err != nil {
//	    return err
//	}
//	defer comic.Close()
//	page, err := comic.Page(0)
//	if err != nil {
//	    return err
//	}
//	img := page.Image()
//
// # Caching
//
// Each comic caches the raw bytes it extracts, keyed by page index, for its
// whole lifetime. A repeated Page call skips the archive but decodes again.
// Collections do not cache comics: every Comic call reopens the archive.
//
// Display-ready conversion of decoded images is cached separately by the
// [github.com/ben0x539/comik/resource] package.
//
// # Errors
//
// Failures wrap one of [ErrUnsupportedFormat], [ErrArchiveRead],
// [ErrDecode] or [ErrIndexOutOfRange]; match them with errors.Is. A failure
// for one page never affects cached state for other pages.
package comik
