// Package cache provides raw page-byte caching for comics.
//
// A comic keeps the bytes it extracted for each page so that later requests
// for the same page skip the archive entirely. Keys are page indexes within
// one comic; a cache must never be shared between comics.
//
// The default cache is unbounded and lives as long as its comic. Use
// WithMaxBytes for long-running or memory-constrained callers.
package cache

// Cache stores extracted page bytes by page index.
//
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves the bytes cached for page.
	// Returns nil, false if the page is not cached.
	Get(page int) ([]byte, bool)

	// Put stores content for page. Callers must not modify content
	// after Put returns.
	Put(page int, content []byte) error

	// Len returns the number of cached pages.
	Len() int
}
