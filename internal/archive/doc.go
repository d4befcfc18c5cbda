// Package archive opens comic archive containers and provides a sorted
// index of their member entries.
//
// The container format is chosen from the path extension before any I/O is
// attempted:
//   - zip, cbz: zip containers (stored, deflate, and zstd entries)
//   - rar, cbr: rar containers
//
// Entries are sorted byte-wise by their full name. That order is the
// reading order for archives whose names already encode page numbers
// ("001.jpg", "002.jpg", ...). No numeric or natural sorting is applied.
package archive
