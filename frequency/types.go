// SPDX-License-Identifier: MIT

package frequency

// distinctCounter counts occurrences per category and drops categories
// whose count reaches zero.
type distinctCounter[T comparable] struct {
	counts map[T]int
}

func newDistinctCounter[T comparable]() *distinctCounter[T] {
	return &distinctCounter[T]{counts: make(map[T]int)}
}

func (d *distinctCounter[T]) add(v T) { d.counts[v]++ }

func (d *distinctCounter[T]) remove(v T) {
	if d.counts[v] <= 1 {
		delete(d.counts, v)

		return
	}
	d.counts[v]--
}

// distinct is the number of categories with a positive count.
func (d *distinctCounter[T]) distinct() int { return len(d.counts) }

// replaceCounter counts occurrences per category and tracks the highest
// count ever reached. maxFreq is non-decreasing.
type replaceCounter[T comparable] struct {
	counts  map[T]int
	maxFreq int
}

func newReplaceCounter[T comparable]() *replaceCounter[T] {
	return &replaceCounter[T]{counts: make(map[T]int)}
}

func (r *replaceCounter[T]) add(v T) {
	r.counts[v]++
	r.maxFreq = max(r.maxFreq, r.counts[v])
}

// remove leaves maxFreq untouched.
func (r *replaceCounter[T]) remove(v T) { r.counts[v]-- }

// replacements is the number of elements that differ from the most frequent
// category, computed against the possibly stale maximum.
func (r *replaceCounter[T]) replacements(size int) int { return size - r.maxFreq }
