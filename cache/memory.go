package cache

import (
	"container/list"
	"errors"
	"sync"
)

// ErrTooLarge is returned by Put when a single entry exceeds the byte limit.
var ErrTooLarge = errors.New("cache: entry exceeds byte limit")

// Memory is an in-memory Cache.
//
// With no byte limit (the default) entries are never evicted. With a limit,
// least recently used pages are evicted until the total fits.
type Memory struct {
	mu       sync.Mutex
	maxBytes int64
	size     int64
	entries  map[int]*list.Element
	lru      *list.List // front is most recently used
}

type memoryEntry struct {
	page    int
	content []byte
}

// Option configures a Memory cache.
type Option func(*Memory)

// WithMaxBytes bounds the total cached bytes. Values <= 0 mean unlimited.
func WithMaxBytes(n int64) Option {
	return func(m *Memory) {
		m.maxBytes = n
	}
}

// NewMemory creates an empty in-memory cache.
func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		entries: make(map[int]*list.Element),
		lru:     list.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get retrieves the bytes cached for page.
func (m *Memory) Get(page int) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[page]
	if !ok {
		return nil, false
	}
	m.lru.MoveToFront(el)
	return el.Value.(*memoryEntry).content, true
}

// Put stores content for page, replacing any previous value.
func (m *Memory) Put(page int, content []byte) error {
	n := int64(len(content))
	if m.maxBytes > 0 && n > m.maxBytes {
		return ErrTooLarge
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.entries[page]; ok {
		e := el.Value.(*memoryEntry)
		m.size += n - int64(len(e.content))
		e.content = content
		m.lru.MoveToFront(el)
	} else {
		m.entries[page] = m.lru.PushFront(&memoryEntry{page: page, content: content})
		m.size += n
	}
	m.evict()
	return nil
}

// evict drops least recently used entries until size fits maxBytes.
// Caller must hold m.mu.
func (m *Memory) evict() {
	if m.maxBytes <= 0 {
		return
	}
	for m.size > m.maxBytes {
		el := m.lru.Back()
		if el == nil {
			return
		}
		e := el.Value.(*memoryEntry)
		m.lru.Remove(el)
		delete(m.entries, e.page)
		m.size -= int64(len(e.content))
	}
}

// Len returns the number of cached pages.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// MaxBytes returns the configured size limit (0 = unlimited).
func (m *Memory) MaxBytes() int64 {
	return max(m.maxBytes, 0)
}

// SizeBytes returns the total size of cached content in bytes.
func (m *Memory) SizeBytes() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.size
}

var _ Cache = (*Memory)(nil)
