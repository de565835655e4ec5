// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import "slices"

// Equal reports whether a and b have the same length and pairwise equal
// elements. The inline capacities of a and b may differ.
func Equal[T comparable, A Inline[T], B Inline[T]](a *Vec[T, A], b *Vec[T, B]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal but compares elements with eq.
// Lengths are compared first; eq is called in index order and comparison
// stops at the first mismatch.
func EqualFunc[T, U any, A Inline[T], B Inline[U]](a *Vec[T, A], b *Vec[U, B], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}
