// SPDX-License-Identifier: MIT

package fixed

import "github.com/katalvlaran/slidingwindow/window"

// MaxSum returns the window of width k with the largest sum.
// Ties keep the earliest window.
//
// Example:
//
//	res, _ := MaxSum([]int{2, 1, 5, 1, 3, 2}, 3)
//	// res.Value == 9, res.Window == [2,4]
func MaxSum[T window.Number](seq []T, k int, opts ...window.Option) (Result[T], error) {
	return bestSum("fixed.MaxSum", seq, k, func(cand, best T) bool { return cand > best }, opts)
}

// MinSum returns the window of width k with the smallest sum.
// Ties keep the earliest window.
func MinSum[T window.Number](seq []T, k int, opts ...window.Option) (Result[T], error) {
	return bestSum("fixed.MinSum", seq, k, func(cand, best T) bool { return cand < best }, opts)
}

// MaxAverage returns the largest mean over all windows of width k together
// with the bounds of that window.
func MaxAverage[T window.Number](seq []T, k int, opts ...window.Option) (float64, window.Window, error) {
	res, err := bestSum("fixed.MaxAverage", seq, k, func(cand, best T) bool { return cand > best }, opts)
	if err != nil {
		return 0, window.Window{}, err
	}

	return float64(res.Value) / float64(k), res.Window, nil
}

// Sums returns the sum of every window of width k, in scan order.
// len(result) == len(seq)-k+1.
func Sums[T window.Number](seq []T, k int, opts ...window.Option) ([]T, error) {
	if err := validate("fixed.Sums", len(seq), k); err != nil {
		return nil, err
	}
	o := window.NewOptions(opts...)

	out := make([]T, 0, len(seq)-k+1)
	var sum T
	left := 0
	for right := range seq {
		sum += seq[right]
		o.Expand(left, right)
		if right-left+1 == k {
			out = append(out, sum)
			o.Record(left, right)
			sum -= seq[left]
			left++
			o.Shrink(left, right)
		}
	}

	return out, nil
}

// bestSum is the shared scan behind MaxSum, MinSum and MaxAverage.
// better(cand, best) reports whether cand replaces the current best.
func bestSum[T window.Number](op string, seq []T, k int, better func(cand, best T) bool, opts []window.Option) (Result[T], error) {
	if err := validate(op, len(seq), k); err != nil {
		return Result[T]{}, err
	}
	o := window.NewOptions(opts...)

	var (
		sum   T
		res   Result[T]
		found bool
	)
	left := 0
	for right := range seq {
		sum += seq[right]
		o.Expand(left, right)
		if right-left+1 < k {
			continue
		}
		if !found || better(sum, res.Value) {
			res = Result[T]{Window: window.Window{Left: left, Right: right}, Value: sum}
			found = true
			o.Record(left, right)
		}
		sum -= seq[left]
		left++
		o.Shrink(left, right)
	}

	return res, nil
}
