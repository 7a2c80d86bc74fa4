// SPDX-License-Identifier: MIT

package anagram

import (
	"errors"

	"github.com/katalvlaran/slidingwindow/window"
)

// FirstPermutation returns the earliest window of src, len(pattern) wide,
// that is a permutation of pattern.
//
// Errors:
//   - empty pattern   → *window.ArgumentError
//   - no match        → window.ErrNoWindow (also for empty or too-short src)
func FirstPermutation[T comparable](src, pattern []T, opts ...window.Option) (window.Window, error) {
	var (
		first window.Window
		found bool
	)
	err := scan("anagram.FirstPermutation", src, pattern, opts, func(w window.Window) bool {
		first, found = w, true

		return false
	})
	if err != nil {
		return window.Window{}, err
	}
	if !found {
		return window.Window{}, window.ErrNoWindow
	}

	return first, nil
}

// ContainsPermutation reports whether some window of src is a permutation
// of pattern. A missing match is (false, nil); only an empty pattern errors.
//
// Example:
//
//	ok, _ := ContainsPermutationString("eidbaooo", "ab") // true
func ContainsPermutation[T comparable](src, pattern []T, opts ...window.Option) (bool, error) {
	_, err := FirstPermutation(src, pattern, opts...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, window.ErrNoWindow):
		return false, nil
	default:
		return false, err
	}
}

// FindAll returns the start index of every window of src that is a
// permutation of pattern, in increasing order. No match yields an empty,
// non-nil slice.
func FindAll[T comparable](src, pattern []T, opts ...window.Option) ([]int, error) {
	starts := []int{}
	err := scan("anagram.FindAll", src, pattern, opts, func(w window.Window) bool {
		starts = append(starts, w.Left)

		return true
	})
	if err != nil {
		return nil, err
	}

	return starts, nil
}

// FirstPermutationString is FirstPermutation over runes.
func FirstPermutationString(src, pattern string, opts ...window.Option) (window.Window, error) {
	return FirstPermutation([]rune(src), []rune(pattern), opts...)
}

// ContainsPermutationString is ContainsPermutation over runes.
func ContainsPermutationString(src, pattern string, opts ...window.Option) (bool, error) {
	return ContainsPermutation([]rune(src), []rune(pattern), opts...)
}

// FindAllString is FindAll over runes.
func FindAllString(src, pattern string, opts ...window.Option) ([]int, error) {
	return FindAll([]rune(src), []rune(pattern), opts...)
}

// scan slides a window of len(pattern) over src and calls visit for every
// match until visit returns false.
func scan[T comparable](op string, src, pattern []T, opts []window.Option, visit func(w window.Window) bool) error {
	m := len(pattern)
	if m == 0 {
		return window.InvalidArgument(op, "len(pattern)", 0, "must be >= 1")
	}
	o := window.NewOptions(opts...)

	nt := newNeedTracker(pattern)
	left := 0
	for right, v := range src {
		nt.enter(v)
		o.Expand(left, right)
		if right-left+1 < m {
			continue
		}
		if nt.full() {
			o.Record(left, right)
			if !visit(window.Window{Left: left, Right: right}) {
				return nil
			}
		}
		nt.leave(src[left])
		left++
		o.Shrink(left, right)
	}

	return nil
}
