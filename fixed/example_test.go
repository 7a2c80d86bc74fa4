// SPDX-License-Identifier: MIT

package fixed_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/slidingwindow/fixed"
	"github.com/katalvlaran/slidingwindow/window"
)

// ExampleMaxSum finds the busiest four-minute stretch of request counts.
//
// Scenario:
//
//	seq = [1, 4, 2, 10, 23, 3, 1, 0, 20], k = 4
//	windows: 17, 39, 38, 37, 27, 24 → best 39 at [1,4]
//
// Complexity: O(n) time, O(1) memory.
func ExampleMaxSum() {
	res, err := fixed.MaxSum([]int{1, 4, 2, 10, 23, 3, 1, 0, 20}, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("sum=%d window=%s\n", res.Value, res.Window)
	// Output:
	// sum=39 window=[1,4]
}

// ExampleMaxima shows the per-window maximum computed with a monotonic deque.
func ExampleMaxima() {
	out, _ := fixed.Maxima([]int{1, 3, -1, -3, 5, 3, 6, 7}, 3)
	fmt.Println(out)
	// Output:
	// [3 3 5 5 6 7]
}

// ExampleSums traces every step of a small scan.
func ExampleSums() {
	sums, _ := fixed.Sums([]int{1, 2, 3}, 2, window.WithTrace(os.Stdout))
	fmt.Println(sums)
	// Output:
	// expand [0,0]
	// expand [0,1]
	// record [0,1]
	// shrink [1,1]
	// expand [1,2]
	// record [1,2]
	// shrink [2,2]
	// [3 5]
}
