// SPDX-License-Identifier: MIT

package fixed

import "github.com/katalvlaran/slidingwindow/window"

// Result is the best window found by MaxSum or MinSum.
type Result[T window.Number] struct {
	// Window holds the bounds of the best window; Window.Len() == k.
	Window window.Window

	// Value is the aggregate of that window.
	Value T
}

// validate rejects a non-positive width and reports ErrNoWindow when the
// sequence cannot hold a single window.
func validate(op string, n, k int) error {
	if k <= 0 {
		return window.InvalidArgument(op, "k", k, "must be >= 1")
	}
	if n < k {
		return window.ErrNoWindow
	}

	return nil
}
