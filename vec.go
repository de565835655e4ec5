// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"fmt"
	"iter"
	"unsafe"
)

// Vec is a growable sequence that keeps up to N elements inline.
//
// N is the length of the array type A (see [Inline]). While Len() <= N and
// the Vec has never grown, elements live in the embedded array and no
// allocation happens. Growing past the inline capacity moves the elements
// into a separately allocated block that this Vec alone owns.
//
// The zero value is an empty Vec in inline mode, ready to use.
//
// A Vec must not be copied by value; use [Vec.Clone], [Vec.CopyFrom],
// [Vec.Move] or [Vec.MoveFrom]. A by-value copy would share the heap block.
//
// A Vec is not safe for concurrent use. Distinct Vecs may be used from
// distinct goroutines without synchronization.
type Vec[T any, A Inline[T]] struct {
	noCopy noCopy

	inline A
	heap   []T // owned block in heap mode, len(heap) == capacity; nil otherwise
	size   int
	mode   mode
}

// New returns an empty Vec in inline mode.
func New[T any, A Inline[T]]() *Vec[T, A] {
	return new(Vec[T, A])
}

// Make returns a Vec holding n zero values.
//
// If n <= N the Vec is inline with capacity N. Otherwise it is in heap mode
// with capacity exactly n.
//
// Panics if n < 0.
func Make[T any, A Inline[T]](n int) *Vec[T, A] {
	if n < 0 {
		panic("smallvec: negative size")
	}
	v := new(Vec[T, A])
	if n > len(v.inline) {
		v.heap = allocBlock[T](n)
		v.mode = modeHeap
	}
	v.size = n
	return v
}

// Of returns a Vec holding elems, in order.
//
//	v := smallvec.Of[int, [3]int](1, 2, 3, 4, 5) // heap mode, Cap() == 5
func Of[T any, A Inline[T]](elems ...T) *Vec[T, A] {
	return From[T, A](elems)
}

// From returns a Vec holding a copy of s, in order.
// The Vec is sized as by [Make](len(s)).
func From[T any, A Inline[T]](s []T) *Vec[T, A] {
	v := Make[T, A](len(s))
	copy(v.storage(), s)
	return v
}

// inlineSlots returns the embedded array as a slice.
func (v *Vec[T, A]) inlineSlots() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.inline)), len(v.inline))
}

// storage returns every addressable slot, live or not.
func (v *Vec[T, A]) storage() []T {
	if v.mode == modeHeap {
		return v.heap
	}
	return v.inlineSlots()
}

// Len returns the number of elements.
func (v *Vec[T, A]) Len() int {
	return v.size
}

// Cap returns the number of addressable slots.
// It is N in inline mode.
func (v *Vec[T, A]) Cap() int {
	if v.mode == modeHeap {
		return len(v.heap)
	}
	return len(v.inline)
}

// Empty reports whether the Vec has no elements.
func (v *Vec[T, A]) Empty() bool {
	return v.size == 0
}

// IsInline reports whether the elements live in the embedded array.
func (v *Vec[T, A]) IsInline() bool {
	return v.mode == modeInline
}

// At returns the element at index i without checking i against Len.
//
// The result for Len() <= i < Cap() is unspecified. Indexes outside
// [0, Cap()) panic. Use [Vec.Get] when i is not known to be in range.
func (v *Vec[T, A]) At(i int) T {
	return v.storage()[i]
}

// Ptr returns a pointer to the element at index i without checking i
// against Len. The pointer is valid until the next call that may
// reallocate or change mode: Append, Clear, Release, CopyFrom, MoveFrom.
func (v *Vec[T, A]) Ptr(i int) *T {
	return &v.storage()[i]
}

// Set stores x at index i without checking i against Len.
func (v *Vec[T, A]) Set(i int, x T) {
	v.storage()[i] = x
}

// Get returns the element at index i.
// Returns (zero-value, ErrOutOfRange) if i < 0 or i >= Len().
func (v *Vec[T, A]) Get(i int) (T, error) {
	if uint(i) >= uint(v.size) {
		var zero T
		return zero, ErrOutOfRange
	}
	return v.storage()[i], nil
}

// GetPtr returns a pointer to the element at index i.
// Returns (nil, ErrOutOfRange) if i < 0 or i >= Len().
func (v *Vec[T, A]) GetPtr(i int) (*T, error) {
	if uint(i) >= uint(v.size) {
		return nil, ErrOutOfRange
	}
	return &v.storage()[i], nil
}

// Slice returns the live elements as a slice sharing the Vec's storage.
//
// Writes through the slice are visible in the Vec. The slice's capacity is
// clipped to Len, so appending to it never writes into the Vec. The slice is
// invalidated by Append, Clear, Release, CopyFrom and MoveFrom.
func (v *Vec[T, A]) Slice() []T {
	return v.storage()[:v.size:v.size]
}

// Data returns a pointer to the first slot of the active storage.
// It points into the Vec itself in inline mode.
// The pointer is valid until the next mutating call.
func (v *Vec[T, A]) Data() *T {
	return unsafe.SliceData(v.storage())
}

// All returns an iterator over index-value pairs of the live elements.
// The range is fixed when iteration starts.
func (v *Vec[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Slice() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements.
func (v *Vec[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.Slice() {
			if !yield(x) {
				return
			}
		}
	}
}

// Ptrs returns an iterator over index-pointer pairs of the live elements,
// for in-place mutation.
func (v *Vec[T, A]) Ptrs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		s := v.Slice()
		for i := range s {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// Format implements fmt.Formatter by formatting the live elements as a slice.
func (v *Vec[T, A]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Slice())
}
