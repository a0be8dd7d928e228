// internal/frontier/frontier.go
//
// Package frontier implements the two-generation URL queue the crawl
// engine drains breadth-first. Each generation is a Frontier: an
// unbalanced binary search tree of link records, keyed by
// byte-lexicographic URL, built on top of an arena so that tree edges
// are indices rather than addresses. Exactly two Frontiers exist per
// crawl, one DRAINING and one FILLING; when the draining side empties,
// SwapGenerations flips both.
package frontier

import (
	"bytes"

	"github.com/ossreap/reaper/internal/arena"
)

// State is which half of a generation pair a Frontier currently plays.
type State int

const (
	Draining State = iota
	Filling
)

// record is one queued URL. left/right/parent are arena indices, never
// raw addresses, so arena growth never needs a pointer-patching pass.
type record struct {
	url        string
	left       arena.Index
	right      arena.Index
	parent     arena.Index
	nrRequests int
}

// Frontier is one generation's BST of link records.
type Frontier struct {
	cache *arena.Arena[record]
	root  arena.Index
	state State
}

// New constructs an empty Frontier with room for initialCount records
// pre-reserved.
func New(initialCount int, state State) *Frontier {
	return &Frontier{
		cache: arena.New[record](initialCount),
		root:  arena.NilIndex,
		state: state,
	}
}

// State reports whether this Frontier is currently draining or filling.
func (f *Frontier) State() State { return f.state }

// Len returns the number of live records currently queued.
func (f *Frontier) Len() int { return f.cache.NrUsed() }

// Insert adds url to the tree, rejecting it if an equal URL is already
// present or if url is empty. Empty-URL records are never inserted:
// the source's ambiguity on this point is resolved here deliberately,
// since an empty key can never be a meaningful candidate and would
// only ever collide with itself under byte-lexicographic comparison.
func (f *Frontier) Insert(url string) bool {
	if url == "" {
		return false
	}

	f.cache.Lock()
	defer f.cache.Unlock()

	if f.root == arena.NilIndex {
		idx := f.cache.Alloc()
		rec := f.cache.Get(idx)
		rec.url = url
		rec.left, rec.right, rec.parent = arena.NilIndex, arena.NilIndex, arena.NilIndex
		f.root = idx
		return true
	}

	cursor := f.root
	for {
		node := f.cache.Get(cursor)
		switch {
		case url == node.url:
			return false
		case url < node.url:
			if node.left == arena.NilIndex {
				idx := f.cache.Alloc()
				// Re-derive node after Alloc: the backing slice may
				// have grown and moved, invalidating the pointer held
				// across the call.
				node = f.cache.Get(cursor)
				node.left = idx
				rec := f.cache.Get(idx)
				rec.url = url
				rec.left, rec.right = arena.NilIndex, arena.NilIndex
				rec.parent = cursor
				return true
			}
			cursor = node.left
		default:
			if node.right == arena.NilIndex {
				idx := f.cache.Alloc()
				node = f.cache.Get(cursor)
				node.right = idx
				rec := f.cache.Get(idx)
				rec.url = url
				rec.left, rec.right = arena.NilIndex, arena.NilIndex
				rec.parent = cursor
				return true
			}
			cursor = node.right
		}
	}
}

// Contains reports whether url is already present in the tree. Calling
// Contains on a nil Frontier is valid and always reports false: the
// source reaches its unlock call even when the target cache is absent,
// so the guard belongs here rather than at every call site.
func (f *Frontier) Contains(url string) bool {
	if f == nil || url == "" {
		return false
	}

	f.cache.Lock()
	defer f.cache.Unlock()

	cursor := f.root
	for cursor != arena.NilIndex {
		node := f.cache.Get(cursor)
		switch {
		case url == node.url:
			return true
		case url < node.url:
			cursor = node.left
		default:
			cursor = node.right
		}
	}
	return false
}

// Teardown clears the tree, releasing every record back to the arena's
// free list via a post-order walk. It is safe to call repeatedly.
func (f *Frontier) Teardown() {
	f.cache.Lock()
	defer f.cache.Unlock()
	f.teardown(f.root)
	f.root = arena.NilIndex
}

func (f *Frontier) teardown(idx arena.Index) {
	if idx == arena.NilIndex {
		return
	}
	node := f.cache.Get(idx)
	left, right := node.left, node.right
	node.left, node.right, node.parent = arena.NilIndex, arena.NilIndex, arena.NilIndex
	f.teardown(left)
	f.teardown(right)
	f.cache.Free(idx)
}

// ClearArena discards the whole generation at once instead of freeing
// record-by-record as Teardown does.
func (f *Frontier) ClearArena() {
	f.cache.Lock()
	defer f.cache.Unlock()
	f.cache.ClearAll()
	f.root = arena.NilIndex
}

// Walk visits every live URL in arena order: the order of the slots
// the records occupy, which is insertion order until a freed slot is
// reused. Freed slots are zeroed, so their empty URL marks them as
// not live.
func (f *Frontier) Walk(visit func(url string)) {
	f.cache.Lock()
	defer f.cache.Unlock()
	for i := 0; i < f.cache.Cap(); i++ {
		if rec := f.cache.Get(arena.Index(i)); rec.url != "" {
			visit(rec.url)
		}
	}
}

func (f *Frontier) walk(idx arena.Index, visit func(url string)) {
	if idx == arena.NilIndex {
		return
	}
	node := f.cache.Get(idx)
	left, right, url := node.left, node.right, node.url
	f.walk(left, visit)
	visit(url)
	f.walk(right, visit)
}

// Pair owns the DRAINING/FILLING generation pair and the single
// operation that flips them, per the design note that the pair should
// be a value the Engine owns rather than two loose globals.
type Pair struct {
	sides [2]*Frontier
}

// NewPair constructs a Pair with both generations freshly allocated.
func NewPair(initialCount int) *Pair {
	return &Pair{sides: [2]*Frontier{
		New(initialCount, Draining),
		New(initialCount, Filling),
	}}
}

// Draining returns the currently draining generation.
func (p *Pair) Draining() *Frontier {
	if p.sides[0].state == Draining {
		return p.sides[0]
	}
	return p.sides[1]
}

// Filling returns the currently filling generation.
func (p *Pair) Filling() *Frontier {
	if p.sides[0].state == Filling {
		return p.sides[0]
	}
	return p.sides[1]
}

// SwapGenerations flips both sides' state fields, called once the
// draining side's iteration completes.
func (p *Pair) SwapGenerations() {
	p.sides[0].state = flip(p.sides[0].state)
	p.sides[1].state = flip(p.sides[1].state)
}

func flip(s State) State {
	if s == Draining {
		return Filling
	}
	return Draining
}

// compareURL exists only to document the comparison key; BST ordering
// above is done with plain string comparison, which is already
// byte-lexicographic for Go strings.
func compareURL(a, b string) int {
	return bytes.Compare([]byte(a), []byte(b))
}
