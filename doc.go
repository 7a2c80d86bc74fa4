// Package slidingwindow is a small, dependency-free collection of
// sliding-window procedures over in-memory sequences.
//
// 🚀 What is a sliding window?
//
//	A contiguous range [Left, Right] moves forward over a sequence. Right
//	advances once per step and one element enters; Left advances zero or
//	more times and elements leave. The window state (a sum, a count map, a
//	need map) is updated incrementally, never recomputed, so every
//	procedure runs in O(n).
//
// ✨ What's inside
//
//	window/    — Window bounds, Number constraint, options & hooks, errors
//	fixed/     — width-k windows: MaxSum, MinSum, Sums, MaxAverage, Maxima
//	variable/  — ShortestAtLeast, Longest with a pluggable State
//	frequency/ — LongestKDistinct, LongestReplaceable
//	anagram/   — FirstPermutation, ContainsPermutation, FindAll
//	cover/     — MinWindow, MinWindowString
//	examples/  — runnable scenarios
//
// Every procedure is a pure function: inputs are never mutated, no state
// survives between calls, and "no valid window" is reported through
// window.ErrNoWindow rather than a zero length.
//
// Quick example:
//
//	w, _ := variable.ShortestAtLeast([]int{2, 3, 1, 2, 4, 3}, 7)
//	// w == [4,5]
//
//	go get github.com/katalvlaran/slidingwindow
package slidingwindow
