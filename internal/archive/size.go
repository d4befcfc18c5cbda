package archive

import (
	"io"
	"math"
)

// readAllWithLimit reads up to maxSize bytes from r.
// Returns errEntryTooLarge if more than maxSize bytes are available.
func readAllWithLimit(r io.Reader, maxSize uint64) ([]byte, error) {
	if maxSize > uint64(math.MaxInt-1) {
		maxSize = uint64(math.MaxInt - 1)
	}
	limit := int64(maxSize) + 1 //nolint:gosec // clamped above
	lr := &io.LimitedReader{R: r, N: limit}
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) > maxSize { //nolint:gosec // len is always non-negative
		return nil, errEntryTooLarge
	}
	return data, nil
}
