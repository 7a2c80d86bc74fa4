// SPDX-License-Identifier: MIT

// Package cover finds the shortest window of a source sequence that
// contains every category of a pattern at least as many times as the
// pattern does.
//
// How it works
//
//	need[c] starts at the pattern count of c and missing at len(pattern).
//	When c enters, missing drops if need[c] was still positive, and need[c]
//	is always decremented. It may go negative: that is surplus, and it
//	must be remembered so that removing a surplus copy later does not
//	reopen the gap. While missing == 0 the window covers the pattern; it is
//	recorded if shorter, then the left element leaves (need[c]++, and
//	missing grows again if need[c] turns positive).
//
//	  src = "ADOBECODEBANC", pattern = "ABC" → "BANC"
//
// Complexity: O(n + m) time, O(distinct categories) space.
package cover
