// SPDX-License-Identifier: MIT

package window

import "fmt"

// Number is the element constraint for windows that keep a running sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Window is a closed index range [Left, Right] over a sequence.
//
// A non-empty window satisfies 0 <= Left <= Right < n. During a shrink step
// hooks may observe Left == Right+1, the empty window left behind when the
// last element has been removed.
type Window struct {
	Left  int
	Right int
}

// Len returns the number of elements covered by w (0 for an empty window).
func (w Window) Len() int {
	if w.Right < w.Left {
		return 0
	}

	return w.Right - w.Left + 1
}

// Valid reports whether w is a non-empty range inside a sequence of length n.
func (w Window) Valid(n int) bool {
	return w.Left >= 0 && w.Left <= w.Right && w.Right < n
}

// String renders w as "[Left,Right]".
func (w Window) String() string {
	return fmt.Sprintf("[%d,%d]", w.Left, w.Right)
}

// Slice returns the part of seq covered by w. The result aliases seq and
// must be treated as read-only. An invalid window yields nil.
func Slice[T any](seq []T, w Window) []T {
	if !w.Valid(len(seq)) {
		return nil
	}

	return seq[w.Left : w.Right+1]
}
