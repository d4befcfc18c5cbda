// Package viewer drives comik providers the way an interactive reader does:
// it holds the current collection, resolves (comic, page) positions to
// decoded pages, and prepares each page for display through a resource
// cache.
//
// Navigation and input are left to the caller.
package viewer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ben0x539/comik"
	"github.com/ben0x539/comik/resource"
)

// ErrNoCollection is returned when a frame is requested before Reset.
var ErrNoCollection = errors.New("viewer: no collection loaded")

// Session is the state behind a reader window.
//
// Reset replaces everything at once: the collection, the open comic and the
// texture cache. The most recently used comic stays open between frames so
// its raw page cache is reused.
//
// Session is safe for concurrent use, but frames are resolved one at a time.
type Session struct {
	logger    *slog.Logger
	comicOpts []comik.Option
	loader    resource.TextureLoader

	mu         sync.Mutex
	collection comik.CollectionProvider
	textures   *resource.Cache[*resource.Texture]
	comic      comik.ComicProvider
	comicIndex int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used by the session and its providers.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithComicOptions sets options applied to every opened comic.
func WithComicOptions(opts ...comik.Option) Option {
	return func(s *Session) {
		s.comicOpts = append(s.comicOpts, opts...)
	}
}

// WithTextureLoader sets the loader used to prepare pages for display.
func WithTextureLoader(l resource.TextureLoader) Option {
	return func(s *Session) {
		s.loader = l
	}
}

// New creates a session with no collection loaded.
func New(opts ...Option) *Session {
	s := &Session{comicIndex: -1}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// Reset discards all state and loads a new collection over paths.
func (s *Session) Reset(name string, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.closeComicLocked()
	opts := append([]comik.Option{comik.WithLogger(s.logger)}, s.comicOpts...)
	s.collection = comik.NewFileSystemCollection(name, paths, opts...)
	s.textures = resource.New[*resource.Texture](s.loader, resource.WithLogger(s.logger))
	s.logger.Info("loaded collection", "name", name, "comics", len(paths))
	return err
}

// Collection returns the current collection, or nil before Reset.
func (s *Session) Collection() comik.CollectionProvider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection
}

// Textures returns the current texture cache, or nil before Reset.
func (s *Session) Textures() *resource.Cache[*resource.Texture] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.textures
}

// Comic returns the comic at index, reusing the open comic when the index
// matches the previous call.
func (s *Session) Comic(index int) (comik.ComicProvider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comicLocked(index)
}

func (s *Session) comicLocked(index int) (comik.ComicProvider, error) {
	if s.collection == nil {
		return nil, ErrNoCollection
	}
	if s.comic != nil && s.comicIndex == index {
		return s.comic, nil
	}
	c, err := s.collection.Comic(index)
	if err != nil {
		return nil, err
	}
	if err := s.closeComicLocked(); err != nil {
		s.logger.Warn("close previous comic", "error", err)
	}
	s.comic = c
	s.comicIndex = index
	return c, nil
}

// Page resolves a (comic, page) position to a decoded page.
func (s *Session) Page(comicIndex, pageIndex int) (comik.PageProvider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageLocked(comicIndex, pageIndex)
}

func (s *Session) pageLocked(comicIndex, pageIndex int) (comik.PageProvider, error) {
	c, err := s.comicLocked(comicIndex)
	if err != nil {
		return nil, err
	}
	return c.Page(pageIndex)
}

// Frame returns the display-ready texture for a (comic, page) position.
//
// The page is resolved and decoded, then looked up in the texture cache by
// its key; on a miss the decoded image is converted and cached.
func (s *Session) Frame(comicIndex, pageIndex int) (*resource.Texture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page, err := s.pageLocked(comicIndex, pageIndex)
	if err != nil {
		return nil, fmt.Errorf("frame %d/%d: %w", comicIndex, pageIndex, err)
	}

	tex, err := s.textures.Load(resource.KeyOf(page), page.Image())
	if err != nil {
		return nil, fmt.Errorf("frame %d/%d: %w", comicIndex, pageIndex, err)
	}
	return tex, nil
}

// Close releases the open comic. The session can be Reset again afterwards.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeComicLocked()
}

func (s *Session) closeComicLocked() error {
	if s.comic == nil {
		return nil
	}
	err := s.comic.Close()
	s.comic = nil
	s.comicIndex = -1
	return err
}
