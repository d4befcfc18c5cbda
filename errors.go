package comik

import "github.com/ben0x539/comik/internal/comiktype"

// Sentinel errors re-exported from internal/comiktype.
var (
	// ErrUnsupportedFormat is returned when an archive extension is not
	// recognized. It is raised before any I/O.
	ErrUnsupportedFormat = comiktype.ErrUnsupportedFormat

	// ErrArchiveRead is returned when an archive cannot be opened or listed,
	// or an entry cannot be extracted.
	ErrArchiveRead = comiktype.ErrArchiveRead

	// ErrDecode is returned when a page's bytes are not a recognized raster
	// image. Only that page is affected.
	ErrDecode = comiktype.ErrDecode

	// ErrIndexOutOfRange is returned when a comic or page index is out of
	// bounds.
	ErrIndexOutOfRange = comiktype.ErrIndexOutOfRange

	// ErrLoad is returned when a decoded image cannot be prepared for
	// display.
	ErrLoad = comiktype.ErrLoad
)
