package archive

import (
	"iter"
	"slices"
	"sort"
	"strings"
)

// Index provides access to archive entry names.
//
// Names are sorted byte-wise once at construction and never reordered, so
// position i always refers to the same entry for the lifetime of the Index.
type Index struct {
	names []string
}

// NewIndex builds an index from the given entry names.
//
// The slice is copied; callers may reuse it after NewIndex returns.
func NewIndex(names []string) *Index {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return &Index{names: sorted}
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return len(idx.names)
}

// Name returns the entry name at position i.
// Returns false if i is out of range.
func (idx *Index) Name(i int) (string, bool) {
	if i < 0 || i >= len(idx.names) {
		return "", false
	}
	return idx.names[i], true
}

// Lookup returns the position of the named entry.
// Returns false if the name does not exist in the index.
//
// Lookup uses binary search and completes in O(log n) time.
func (idx *Index) Lookup(name string) (int, bool) {
	return slices.BinarySearch(idx.names, name)
}

// Names returns a copy of all entry names in sorted order.
func (idx *Index) Names() []string {
	return slices.Clone(idx.names)
}

// All returns an iterator over positions and names in sorted order.
func (idx *Index) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, name := range idx.names {
			if !yield(i, name) {
				return
			}
		}
	}
}

// WithPrefix returns an iterator over entries whose names begin with prefix.
//
// All entries under a directory share a common prefix and are adjacent in
// the index, so this is a binary search followed by a contiguous scan.
func (idx *Index) WithPrefix(prefix string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		start := sort.SearchStrings(idx.names, prefix)
		for i := start; i < len(idx.names); i++ {
			name := idx.names[i]
			if !strings.HasPrefix(name, prefix) {
				return
			}
			if !yield(i, name) {
				return
			}
		}
	}
}
