package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetPut(t *testing.T) {
	t.Parallel()

	m := NewMemory()

	_, ok := m.Get(0)
	assert.False(t, ok, "empty cache should miss")

	require.NoError(t, m.Put(0, []byte("page zero")))
	got, ok := m.Get(0)
	require.True(t, ok)
	assert.Equal(t, []byte("page zero"), got)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, int64(len("page zero")), m.SizeBytes())
}

func TestMemoryReplace(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	require.NoError(t, m.Put(3, []byte("aaaa")))
	require.NoError(t, m.Put(3, []byte("bb")))

	got, ok := m.Get(3)
	require.True(t, ok)
	assert.Equal(t, []byte("bb"), got)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, int64(2), m.SizeBytes())
}

func TestMemoryUnboundedNeverEvicts(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	for i := range 1000 {
		require.NoError(t, m.Put(i, make([]byte, 1024)))
	}
	assert.Equal(t, 1000, m.Len())
	assert.Equal(t, int64(0), m.MaxBytes())
}

func TestMemoryEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	m := NewMemory(WithMaxBytes(10))
	require.NoError(t, m.Put(0, []byte("aaaa")))
	require.NoError(t, m.Put(1, []byte("bbbb")))

	// Touch page 0 so page 1 becomes the eviction candidate.
	_, ok := m.Get(0)
	require.True(t, ok)

	require.NoError(t, m.Put(2, []byte("cccc")))

	_, ok = m.Get(1)
	assert.False(t, ok, "page 1 should have been evicted")
	_, ok = m.Get(0)
	assert.True(t, ok)
	_, ok = m.Get(2)
	assert.True(t, ok)
	assert.LessOrEqual(t, m.SizeBytes(), int64(10))
}

func TestMemoryRejectsOversizedEntry(t *testing.T) {
	t.Parallel()

	m := NewMemory(WithMaxBytes(4))
	err := m.Put(0, []byte("too large"))
	require.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, 0, m.Len())
}

func TestMemoryConcurrentAccess(t *testing.T) {
	t.Parallel()

	m := NewMemory(WithMaxBytes(64))
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Go(func() {
			for i := range 100 {
				_ = m.Put((g*100+i)%16, []byte("data"))
				_, _ = m.Get(i % 16)
			}
		})
	}
	wg.Wait()
	assert.LessOrEqual(t, m.SizeBytes(), int64(64))
}
