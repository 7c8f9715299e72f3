// Package multimap provides an ordered many-to-many relation between two
// small key spaces. It must have zero dependencies on ebiten so the input
// core can be tested headless.
package multimap

// Pair is a single (left, right) association.
type Pair[L, R comparable] struct {
	Left  L
	Right R
}

// Table is a duplicate-free set of pairs that keeps insertion order.
// It enforces no policy beyond pair uniqueness. The zero value is ready to use.
type Table[L, R comparable] struct {
	pairs []Pair[L, R]
}

// New returns a table seeded with pairs, dropping duplicates.
func New[L, R comparable](pairs ...Pair[L, R]) *Table[L, R] {
	t := &Table[L, R]{}
	for _, p := range pairs {
		t.Add(p.Left, p.Right)
	}
	return t
}

// Add appends (l, r) unless it is already present. Returns true if the pair was added.
func (t *Table[L, R]) Add(l L, r R) bool {
	if t.Contains(l, r) {
		return false
	}
	t.pairs = append(t.pairs, Pair[L, R]{Left: l, Right: r})
	return true
}

// Remove deletes the exact pair (l, r). Returns true if it was present.
func (t *Table[L, R]) Remove(l L, r R) bool {
	for i, p := range t.pairs {
		if p.Left == l && p.Right == r {
			t.pairs = append(t.pairs[:i], t.pairs[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLeft deletes every pair whose left side is l and returns how many were removed.
func (t *Table[L, R]) RemoveLeft(l L) int {
	return t.removeWhere(func(p Pair[L, R]) bool { return p.Left == l })
}

// RemoveRight deletes every pair whose right side is r and returns how many were removed.
func (t *Table[L, R]) RemoveRight(r R) int {
	return t.removeWhere(func(p Pair[L, R]) bool { return p.Right == r })
}

func (t *Table[L, R]) removeWhere(match func(Pair[L, R]) bool) int {
	kept := t.pairs[:0]
	removed := 0
	for _, p := range t.pairs {
		if match(p) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	// Zero the tail so removed values don't linger in the backing array
	var zero Pair[L, R]
	for i := len(kept); i < len(t.pairs); i++ {
		t.pairs[i] = zero
	}
	t.pairs = kept
	return removed
}

// Contains reports whether the exact pair (l, r) is present.
func (t *Table[L, R]) Contains(l L, r R) bool {
	for _, p := range t.pairs {
		if p.Left == l && p.Right == r {
			return true
		}
	}
	return false
}

// Right returns the right values bound to l in insertion order.
func (t *Table[L, R]) Right(l L) []R {
	var out []R
	for _, p := range t.pairs {
		if p.Left == l {
			out = append(out, p.Right)
		}
	}
	return out
}

// Left returns the left values bound to r in insertion order.
func (t *Table[L, R]) Left(r R) []L {
	var out []L
	for _, p := range t.pairs {
		if p.Right == r {
			out = append(out, p.Left)
		}
	}
	return out
}

// HasLeft reports whether l has at least one binding.
func (t *Table[L, R]) HasLeft(l L) bool {
	for _, p := range t.pairs {
		if p.Left == l {
			return true
		}
	}
	return false
}

// CountLeft returns the number of pairs whose left side is l.
func (t *Table[L, R]) CountLeft(l L) int {
	n := 0
	for _, p := range t.pairs {
		if p.Left == l {
			n++
		}
	}
	return n
}

// Pairs returns a copy of all pairs in insertion order.
func (t *Table[L, R]) Pairs() []Pair[L, R] {
	out := make([]Pair[L, R], len(t.pairs))
	copy(out, t.pairs)
	return out
}

func (t *Table[L, R]) Len() int {
	return len(t.pairs)
}

// Clone returns an independent copy.
func (t *Table[L, R]) Clone() *Table[L, R] {
	return &Table[L, R]{pairs: t.Pairs()}
}

// Reset replaces the contents with pairs, dropping duplicates.
func (t *Table[L, R]) Reset(pairs []Pair[L, R]) {
	t.pairs = nil
	for _, p := range pairs {
		t.Add(p.Left, p.Right)
	}
}
