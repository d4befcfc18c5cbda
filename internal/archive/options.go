package archive

// DefaultMaxEntrySize is the default limit on the uncompressed size of a
// single extracted entry.
const DefaultMaxEntrySize uint64 = 512 << 20

type config struct {
	maxEntrySize     uint64
	decoderMaxMemory uint64
}

func newConfig(opts []Option) *config {
	cfg := &config{maxEntrySize: DefaultMaxEntrySize}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.maxEntrySize == 0 {
		cfg.maxEntrySize = DefaultMaxEntrySize
	}
	return cfg
}

// Option configures an Archive.
type Option func(*config)

// WithMaxEntrySize limits the uncompressed size of a single extracted entry.
// Extracting a larger entry fails. Zero restores the default.
func WithMaxEntrySize(n uint64) Option {
	return func(c *config) {
		c.maxEntrySize = n
	}
}

// WithDecoderMaxMemory caps the memory a zstd decoder may allocate for a
// zstd-compressed zip entry. Zero means no limit.
func WithDecoderMaxMemory(n uint64) Option {
	return func(c *config) {
		c.decoderMaxMemory = n
	}
}
