// SPDX-License-Identifier: MIT

package cover

// coverage is the signed need map plus the count of pattern occurrences the
// current window still lacks. need entries are never clamped at zero.
type coverage[T comparable] struct {
	need    map[T]int
	missing int
}

func newCoverage[T comparable](pattern []T) *coverage[T] {
	need := make(map[T]int, len(pattern))
	for _, v := range pattern {
		need[v]++
	}

	return &coverage[T]{need: need, missing: len(pattern)}
}

func (c *coverage[T]) enter(v T) {
	if c.need[v] > 0 {
		c.missing--
	}
	c.need[v]--
}

func (c *coverage[T]) leave(v T) {
	c.need[v]++
	if c.need[v] > 0 {
		c.missing++
	}
}

func (c *coverage[T]) covered() bool { return c.missing == 0 }
