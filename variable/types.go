// SPDX-License-Identifier: MIT

package variable

import (
	"strconv"

	"github.com/katalvlaran/slidingwindow/window"
)

// State is the incrementally maintained summary of the elements inside a
// window, together with the validity predicate Longest restores after each
// expansion.
//
// Implementations must update in O(1) (or O(1) amortized) per call and
// must accept Remove only for elements previously passed to Add, in the
// same order. An empty State must report Valid() == true for Longest to
// make progress; a State that is invalid even when empty yields
// window.ErrNoWindow.
type State[T any] interface {
	// Add accounts for an element entering at the right edge.
	Add(v T)

	// Remove accounts for an element leaving at the left edge.
	Remove(v T)

	// Valid reports whether the current window satisfies the predicate.
	Valid() bool
}

// SumAtMost is valid while the window sum is <= Limit.
type SumAtMost[T window.Number] struct {
	Limit T
	sum   T
}

// NewSumAtMost returns an empty SumAtMost state with the given limit.
func NewSumAtMost[T window.Number](limit T) *SumAtMost[T] {
	return &SumAtMost[T]{Limit: limit}
}

func (s *SumAtMost[T]) Add(v T) { s.sum += v }
func (s *SumAtMost[T]) Remove(v T) { s.sum -= v }
func (s *SumAtMost[T]) Valid() bool { return s.sum <= s.Limit }

// Sum returns the running sum of the current window.
func (s *SumAtMost[T]) Sum() T { return s.sum }

// Unique is valid while no category occurs more than once in the window.
type Unique[T comparable] struct {
	counts map[T]int
	dups   int // categories with count > 1
}

// NewUnique returns an empty Unique state.
func NewUnique[T comparable]() *Unique[T] {
	return &Unique[T]{counts: make(map[T]int)}
}

// Add increments v's count and tracks the first duplicate.
func (u *Unique[T]) Add(v T) {
	if u.counts == nil {
		u.counts = make(map[T]int)
	}
	u.counts[v]++
	if u.counts[v] == 2 {
		u.dups++
	}
}

// Remove decrements v's count, dropping zero entries.
func (u *Unique[T]) Remove(v T) {
	c := u.counts[v]
	if c == 2 {
		u.dups--
	}
	if c <= 1 {
		delete(u.counts, v)

		return
	}
	u.counts[v] = c - 1
}

// Valid reports whether every category in the window is distinct.
func (u *Unique[T]) Valid() bool { return u.dups == 0 }

// requireNonNegative rejects the first negative element of seq.
func requireNonNegative[T window.Number](op string, seq []T) error {
	for i, v := range seq {
		if v < 0 {
			return window.InvalidArgument(op, "seq["+strconv.Itoa(i)+"]", v, "elements must be non-negative")
		}
	}

	return nil
}
