// Package testutil provides archive and image fixtures for tests.
package testutil

import (
	"fmt"
	"slices"
	"sync"
)

// SequenceSource is an in-memory archive whose Extract returns the next
// payload in a fixed rotation on every call, so tests can tell a real
// extraction apart from a cached one.
//
// SequenceSource is safe for concurrent use.
type SequenceSource struct {
	mu       sync.Mutex
	names    []string
	payloads [][]byte
	calls    map[string]int
	closed   bool
}

// NewSequenceSource returns a source listing names whose extractions cycle
// through payloads.
func NewSequenceSource(names []string, payloads ...[]byte) *SequenceSource {
	return &SequenceSource{
		names:    slices.Clone(names),
		payloads: payloads,
		calls:    make(map[string]int),
	}
}

// Entries returns the entry names in the order given to NewSequenceSource.
func (s *SequenceSource) Entries() []string {
	return slices.Clone(s.names)
}

// Extract returns the next payload for name.
func (s *SequenceSource) Extract(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.names, name) {
		return nil, fmt.Errorf("extract %s: not found", name)
	}
	n := s.calls[name]
	s.calls[name] = n + 1
	if len(s.payloads) == 0 {
		return nil, nil
	}
	return slices.Clone(s.payloads[n%len(s.payloads)]), nil
}

// Close marks the source closed.
func (s *SequenceSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Calls returns how many times name was extracted.
func (s *SequenceSource) Calls(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

// Closed reports whether Close was called.
func (s *SequenceSource) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
