package collision

import (
	"errors"
	"fmt"
)

// ErrStaleHandle is returned when a handle's body was removed or shifted to a
// different index by a removal.
var ErrStaleHandle = errors.New("collision: stale handle")

// Handle names a body slot together with the generation it had when the
// handle was taken. Any removal at or before the slot invalidates it, so a
// handle can never silently alias a different body.
type Handle struct {
	index int
	stamp uint64
}

// Index returns the index the handle was taken at. It is only meaningful
// after Resolve succeeds.
func (h Handle) Index() int {
	return h.index
}

// IsZero reports whether h is the zero Handle, which never resolves.
func (h Handle) IsZero() bool {
	return h.stamp == 0
}

// Handle returns a handle for body i.
func (e *Engine[ID]) Handle(i int) Handle {
	e.mustIndex(i)
	return Handle{index: i, stamp: e.stamps[i]}
}

// Resolve returns the current index of the body h names.
func (e *Engine[ID]) Resolve(h Handle) (int, error) {
	if h.index < 0 || h.index >= len(e.stamps) || e.stamps[h.index] != h.stamp {
		return 0, fmt.Errorf("resolve index %d: %w", h.index, ErrStaleHandle)
	}
	return h.index, nil
}
