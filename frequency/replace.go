// SPDX-License-Identifier: MIT

package frequency

import "github.com/katalvlaran/slidingwindow/window"

// LongestReplaceable returns the longest window that can be made uniform by
// replacing at most k of its elements. Ties keep the earliest window.
//
// Algorithm Outline:
//  1. Advance Right, bump the entering category's count and the max
//     frequency seen so far.
//  2. If size − maxFreq > k, remove the leaving element and advance Left
//     once. The window size never has to drop by more than one.
//  3. Record the window if it is longer than the best.
//
// Every recorded window is genuinely valid: the size only grows on steps
// where maxFreq is achieved by a category inside the window.
//
// Errors:
//   - k < 0       → *window.ArgumentError
//   - empty seq   → window.ErrNoWindow
//
// Example:
//
//	w, _ := LongestReplaceableString("AABABBA", 1) // w.Len() == 4
func LongestReplaceable[T comparable](seq []T, k int, opts ...window.Option) (window.Window, error) {
	if k < 0 {
		return window.Window{}, window.InvalidArgument("frequency.LongestReplaceable", "k", k, "must be >= 0")
	}
	if len(seq) == 0 {
		return window.Window{}, window.ErrNoWindow
	}
	o := window.NewOptions(opts...)

	var best window.Window
	rc := newReplaceCounter[T]()
	left := 0
	for right, v := range seq {
		rc.add(v)
		o.Expand(left, right)
		if rc.replacements(right-left+1) > k {
			rc.remove(seq[left])
			left++
			o.Shrink(left, right)
		}
		if right == 0 || right-left+1 > best.Len() {
			best = window.Window{Left: left, Right: right}
			o.Record(left, right)
		}
	}

	return best, nil
}

// LongestReplaceableString is LongestReplaceable over the runes of s.
func LongestReplaceableString(s string, k int, opts ...window.Option) (window.Window, error) {
	return LongestReplaceable([]rune(s), k, opts...)
}
