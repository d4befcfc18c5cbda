package comik

import (
	"log/slog"

	"github.com/ben0x539/comik/cache"
	"github.com/ben0x539/comik/internal/archive"
)

type config struct {
	logger      *slog.Logger
	newCache    func() cache.Cache
	filter      func(name string) bool
	archiveOpts []archive.Option
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// log returns the logger, falling back to a discard logger if nil.
func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

func (c *config) pageCache() cache.Cache {
	if c.newCache == nil {
		return cache.NewMemory()
	}
	return c.newCache()
}

// Option configures comics and collections.
type Option func(*config)

// WithLogger sets a logger for archive and cache diagnostics.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithPageCache sets the constructor for each comic's raw page cache.
// It is called once per opened comic; the returned cache must not be
// shared. The default is an unbounded cache.NewMemory.
func WithPageCache(newCache func() cache.Cache) Option {
	return func(c *config) {
		c.newCache = newCache
	}
}

// WithEntryFilter keeps only archive entries for which keep returns true.
// By default every entry is a page. See [ImagesOnly].
func WithEntryFilter(keep func(name string) bool) Option {
	return func(c *config) {
		c.filter = keep
	}
}

// WithMaxEntrySize limits the uncompressed size of a single page entry.
func WithMaxEntrySize(n uint64) Option {
	return func(c *config) {
		c.archiveOpts = append(c.archiveOpts, archive.WithMaxEntrySize(n))
	}
}

// WithDecoderMaxMemory caps zstd decoder memory for zstd-compressed zip
// entries. Zero means no limit.
func WithDecoderMaxMemory(n uint64) Option {
	return func(c *config) {
		c.archiveOpts = append(c.archiveOpts, archive.WithDecoderMaxMemory(n))
	}
}
