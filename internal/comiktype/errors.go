// Package comiktype defines shared types used across the comik package and
// its internal packages. This avoids circular imports between comik and
// internal/archive.
package comiktype

import "errors"

// Sentinel errors for comik operations.
var (
	// ErrUnsupportedFormat is returned when an archive path has an
	// extension that does not map to a known container format.
	ErrUnsupportedFormat = errors.New("comik: unsupported archive format")

	// ErrArchiveRead is returned when a container cannot be opened or
	// listed, or when an entry cannot be extracted.
	ErrArchiveRead = errors.New("comik: archive read failed")

	// ErrDecode is returned when extracted bytes are not a recognized
	// raster image.
	ErrDecode = errors.New("comik: image decode failed")

	// ErrIndexOutOfRange is returned when a comic or page index is
	// outside the valid range.
	ErrIndexOutOfRange = errors.New("comik: index out of range")

	// ErrLoad is returned when a decoded image cannot be converted into a
	// display-ready resource.
	ErrLoad = errors.New("comik: resource load failed")
)
