package resource

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/ben0x539/comik"
)

// Loader converts a decoded image into a display-ready resource.
type Loader[R any] interface {
	Load(img image.Image) (R, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc[R any] func(img image.Image) (R, error)

// Load calls f(img).
func (f LoaderFunc[R]) Load(img image.Image) (R, error) {
	return f(img)
}

// Stats reports cache activity.
type Stats struct {
	Entries int
	Hits    uint64
	Misses  uint64
	Loads   uint64
}

// Cache maps keys to converted resources with at most one conversion per
// key for the cache's lifetime.
//
// Cache is safe for concurrent use. Concurrent Load calls for the same key
// share a single conversion. The map lock is never held during conversion.
type Cache[R any] struct {
	loader Loader[R]
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[Key]R
	group   singleflight.Group

	hits   atomic.Uint64
	misses atomic.Uint64
	loads  atomic.Uint64
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets a logger for conversion diagnostics.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates an empty cache that converts images with loader.
func New[R any](loader Loader[R], opts ...Option) *Cache[R] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache[R]{
		loader:  loader,
		logger:  logger,
		entries: make(map[Key]R),
	}
}

// NewTextureCache creates a cache of Textures using the default
// TextureLoader.
func NewTextureCache(opts ...Option) *Cache[*Texture] {
	return New[*Texture](TextureLoader{}, opts...)
}

// Has reports whether a resource for key exists.
func (c *Cache[R]) Has(key Key) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// Get returns the cached resource for key without converting anything.
func (c *Cache[R]) Get(key Key) (R, bool) {
	r, ok := c.lookup(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return r, ok
}

// Load returns the resource for key, converting img on a miss.
//
// If key is already cached, img is ignored and the cached resource is
// returned. Conversion failures wrap comik.ErrLoad and cache nothing, so a
// later Load may retry.
func (c *Cache[R]) Load(key Key, img image.Image) (R, error) {
	if r, ok := c.Get(key); ok {
		return r, nil
	}

	result, err, _ := c.group.Do(key.flightKey(), func() (any, error) {
		// Another caller may have finished converting between our lookup
		// and entering the flight.
		if r, ok := c.lookup(key); ok {
			return r, nil
		}

		r, err := c.loader.Load(img)
		if err != nil {
			if !errors.Is(err, comik.ErrLoad) {
				err = fmt.Errorf("%w: %w", comik.ErrLoad, err)
			}
			c.logger.Debug("resource load failed", "key", key.String(), "error", err)
			return nil, fmt.Errorf("load %s: %w", key, err)
		}

		c.mu.Lock()
		c.entries[key] = r
		c.mu.Unlock()
		c.loads.Add(1)
		c.logger.Debug("loaded resource", "key", key.String())
		return r, nil
	})
	if err != nil {
		var zero R
		return zero, err
	}

	r, _ := result.(R) //nolint:errcheck // type assertion always succeeds when err is nil
	return r, nil
}

// Len returns the number of cached resources.
func (c *Cache[R]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of cache activity.
func (c *Cache[R]) Stats() Stats {
	return Stats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Loads:   c.loads.Load(),
	}
}

func (c *Cache[R]) lookup(key Key) (R, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[key]
	return r, ok
}
