// SPDX-License-Identifier: MIT

package anagram

// needTracker holds the outstanding need per pattern category and how many
// categories are exactly satisfied.
type needTracker[T comparable] struct {
	need       map[T]int
	matched    int // categories with need == 0
	categories int // distinct categories in the pattern
}

func newNeedTracker[T comparable](pattern []T) *needTracker[T] {
	need := make(map[T]int, len(pattern))
	for _, v := range pattern {
		need[v]++
	}

	return &needTracker[T]{need: need, categories: len(need)}
}

// enter accounts for v joining the window.
func (n *needTracker[T]) enter(v T) {
	c, ok := n.need[v]
	if !ok {
		return
	}
	n.need[v] = c - 1
	n.adjust(c, c-1)
}

// leave accounts for v leaving the window.
func (n *needTracker[T]) leave(v T) {
	c, ok := n.need[v]
	if !ok {
		return
	}
	n.need[v] = c + 1
	n.adjust(c, c+1)
}

// adjust updates matched for a need transition from -> to.
func (n *needTracker[T]) adjust(from, to int) {
	switch {
	case to == 0:
		n.matched++
	case from == 0:
		n.matched--
	}
}

// full reports whether every pattern category is exactly satisfied.
func (n *needTracker[T]) full() bool { return n.matched == n.categories }
