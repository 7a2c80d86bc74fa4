// SPDX-License-Identifier: MIT

package cover_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slidingwindow/cover"
	"github.com/katalvlaran/slidingwindow/window"
)

// seedDet keeps the randomized oracle checks reproducible.
const seedDet = int64(99)

// covers reports whether w holds every pattern element with multiplicity.
func covers(w, pattern []byte) bool {
	need := make(map[byte]int, len(pattern))
	for _, v := range pattern {
		need[v]++
	}
	for _, v := range w {
		need[v]--
	}
	for _, c := range need {
		if c > 0 {
			return false
		}
	}

	return true
}

// bruteMin returns the minimal covering length, or 0.
func bruteMin(src, pattern []byte) int {
	best := 0
	for l := range src {
		for r := l; r < len(src); r++ {
			if (best == 0 || r-l+1 < best) && covers(src[l:r+1], pattern) {
				best = r - l + 1
			}
		}
	}

	return best
}

// TestMinWindowString_Known checks textbook inputs.
func TestMinWindowString_Known(t *testing.T) {
	cases := []struct {
		name, s, t, want string
	}{
		{"ADOBECODEBANC", "ADOBECODEBANC", "ABC", "BANC"},
		{"Single", "a", "a", "a"},
		{"Duplicates", "aaflslflsldkalskaaa", "aaa", "aaa"},
		{"SurplusTracked", "abbbbbcdd", "abcdd", "abbbbbcdd"},
		{"Runes", "xñyñz", "ññ", "ñyñ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cover.MinWindowString(tc.s, tc.t)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMinWindow_NotFound distinguishes "no window" from an empty substring.
func TestMinWindow_NotFound(t *testing.T) {
	_, err := cover.MinWindowString("a", "aa")
	assert.ErrorIs(t, err, window.ErrNoWindow)

	_, err = cover.MinWindowString("", "a")
	assert.ErrorIs(t, err, window.ErrNoWindow)

	_, err = cover.MinWindow([]int{1, 2}, []int{3})
	assert.ErrorIs(t, err, window.ErrNoWindow)
}

// TestMinWindow_EmptyPattern is an invalid configuration.
func TestMinWindow_EmptyPattern(t *testing.T) {
	_, err := cover.MinWindowString("abc", "")
	assert.ErrorIs(t, err, window.ErrInvalidArgument)
}

// TestMinWindow_Generic covers a non-rune category type.
func TestMinWindow_Generic(t *testing.T) {
	type event string
	log := []event{"login", "view", "view", "buy", "logout", "login", "buy"}
	w, err := cover.MinWindow(log, []event{"buy", "login"})
	require.NoError(t, err)
	assert.Equal(t, window.Window{Left: 5, Right: 6}, w)
}

// TestMinWindow_AgainstBruteForce checks minimality and coverage.
func TestMinWindow_AgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	gen := func(n, alphabet int) []byte {
		out := make([]byte, n)
		for i := range out {
			out[i] = byte('a' + rng.Intn(alphabet))
		}

		return out
	}
	for iter := 0; iter < 400; iter++ {
		alphabet := 1 + rng.Intn(4)
		src := gen(rng.Intn(18), alphabet)
		pattern := gen(1+rng.Intn(4), alphabet)
		want := bruteMin(src, pattern)

		w, err := cover.MinWindow(src, pattern)
		if want == 0 {
			require.ErrorIs(t, err, window.ErrNoWindow, "src=%q pattern=%q", src, pattern)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, want, w.Len(), "src=%q pattern=%q", src, pattern)
		require.True(t, covers(window.Slice(src, w), pattern))
	}
}

// TestMinWindow_IdempotentAndPure runs twice and checks the input survives.
func TestMinWindow_IdempotentAndPure(t *testing.T) {
	src := []byte("ADOBECODEBANC")
	a, errA := cover.MinWindow(src, []byte("ABC"))
	b, errB := cover.MinWindow(src, []byte("ABC"))
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
	assert.Equal(t, "ADOBECODEBANC", string(src))
}
