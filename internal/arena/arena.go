// internal/arena/arena.go
//
// Package arena implements the slab allocator the URL frontier's binary
// search tree is built on. Records never reference each other through
// raw addresses: every edge (left, right, parent) is stored as an
// Index, so growing the backing slice is a plain append with no
// hole-patching pass. A walking cursor held across an Alloc call must
// still be re-derived through Get afterward, since append may move the
// backing array, but there is nothing to register or adjust beyond
// that single re-derivation.
package arena

import "sync"

// Index identifies a slot's position in an Arena. It is stable across
// growth; a *T obtained from Get is not; re-derive it via Get after any
// Alloc that might have triggered growth.
type Index int32

// NilIndex is the zero value for "no record", analogous to a null
// pointer in the arena's record graph.
const NilIndex Index = -1

// Arena is a growable slab of T, indexed by Index rather than address.
type Arena[T any] struct {
	mu       sync.Mutex
	slots    []T
	used     []bool
	freeList []Index
	assigned int
}

// New constructs an Arena with room for initialCount elements
// pre-reserved (not yet allocated).
func New[T any](initialCount int) *Arena[T] {
	if initialCount <= 0 {
		initialCount = 16
	}
	return &Arena[T]{
		slots: make([]T, 0, initialCount),
		used:  make([]bool, 0, initialCount),
	}
}

// Lock acquires the arena's mutex for the duration of a BST mutation
// that may itself call Alloc (and so may grow the arena).
func (a *Arena[T]) Lock() { a.mu.Lock() }

// Unlock releases the arena's mutex.
func (a *Arena[T]) Unlock() { a.mu.Unlock() }

// Alloc returns the index of a free slot, preferring one from the
// free list before growing the slab. The caller must not hold a *T
// obtained from a prior Get across this call; re-derive it via Get
// with the saved Index instead.
func (a *Arena[T]) Alloc() Index {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.used[idx] = true
		return idx
	}

	var zero T
	a.slots = append(a.slots, zero)
	a.used = append(a.used, true)
	a.assigned++
	return Index(len(a.slots) - 1)
}

// Get re-derives a live reference from idx. It is the only way
// callers should obtain a *T: never cache the returned pointer across
// another call to Alloc, which may grow the backing slice and move it.
func (a *Arena[T]) Get(idx Index) *T {
	if idx < 0 || int(idx) >= len(a.slots) {
		return nil
	}
	return &a.slots[idx]
}

// Free clears idx's used bit and returns it to the free list. The
// slot's value is reset to its zero value so stale references read
// back nothing meaningful.
func (a *Arena[T]) Free(idx Index) {
	if idx < 0 || int(idx) >= len(a.slots) || !a.used[idx] {
		return
	}
	var zero T
	a.slots[idx] = zero
	a.used[idx] = false
	a.freeList = append(a.freeList, idx)
}

// ClearAll marks every slot free and resets the arena to empty,
// without shrinking the underlying capacity.
func (a *Arena[T]) ClearAll() {
	a.slots = a.slots[:0]
	a.used = a.used[:0]
	a.freeList = a.freeList[:0]
	a.assigned = 0
}

// NrUsed returns the number of currently allocated (non-free) slots.
func (a *Arena[T]) NrUsed() int {
	n := 0
	for _, u := range a.used {
		if u {
			n++
		}
	}
	return n
}

// Cap returns the number of slots the arena has ever handed out,
// including ones since freed; it is the valid range for Index values.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}
