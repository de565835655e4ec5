// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

// Clone returns a copy of v with its own storage.
//
// An inline source yields an inline copy. A heap source yields a heap copy
// whose capacity is exactly v.Len(); spare capacity is not copied.
func (v *Vec[T, A]) Clone() *Vec[T, A] {
	c := new(Vec[T, A])
	c.CopyFrom(v)
	return c
}

// CopyFrom replaces the contents of v with a copy of src.
//
// If src is inline, v becomes inline and releases any block it owned.
// If src is in heap mode, v keeps its own block when that block already has
// at least src.Len() slots; otherwise v allocates a block of exactly
// src.Len() slots before releasing the old one.
//
// CopyFrom(v) is a no-op.
func (v *Vec[T, A]) CopyFrom(src *Vec[T, A]) {
	if v == src {
		return
	}
	n := src.size
	if src.mode == modeInline {
		v.toInline()
		dst := v.inlineSlots()
		copy(dst, src.inlineSlots()[:n])
		clear(dst[n:])
		v.size = n
		return
	}

	if v.mode == modeHeap && len(v.heap) >= n {
		copy(v.heap, src.heap[:n])
		clear(v.heap[n:])
		v.size = n
		return
	}
	block := allocBlock[T](n)
	copy(block, src.heap[:n])
	v.adopt(block, n)
}

// Move returns a new Vec holding v's contents.
//
// If v is in heap mode its block is transferred without copying and v is
// reset to an empty inline Vec. If v is inline the elements are copied and
// v keeps them.
func (v *Vec[T, A]) Move() *Vec[T, A] {
	d := new(Vec[T, A])
	d.MoveFrom(v)
	return d
}

// MoveFrom replaces the contents of v with those of src, releasing any block
// v owned.
//
// A heap-mode src hands its block, length and capacity to v and is left
// empty and inline with capacity N. An inline src is copied and left as is.
//
// MoveFrom(v) is a no-op.
func (v *Vec[T, A]) MoveFrom(src *Vec[T, A]) {
	if v == src {
		return
	}
	if src.mode == modeInline {
		n := src.size
		v.toInline()
		dst := v.inlineSlots()
		copy(dst, src.inlineSlots()[:n])
		clear(dst[n:])
		v.size = n
		return
	}

	block, n := src.heap, src.size
	src.heap = nil
	src.size = 0
	src.mode = modeInline
	v.adopt(block, n)
}

// Clear removes all elements, releases the heap block if there is one, and
// returns v to inline mode with capacity N.
func (v *Vec[T, A]) Clear() {
	if v.mode == modeHeap {
		v.toInline()
	} else {
		clear(v.inlineSlots()[:v.size])
	}
	v.size = 0
}

// Release ends v's ownership of any heap block and leaves v empty.
//
// Memory is reclaimed by the garbage collector once nothing references it.
// Release exists so that owners with a defined end of life, such as pools
// and arenas, give up the block deterministically. It is equivalent to Clear.
func (v *Vec[T, A]) Release() {
	v.Clear()
}

// Append adds x at the end of v.
//
// When v is full the capacity doubles: a block of 2×Cap() slots is
// allocated, the elements are copied into it in order, and the previous
// block, if any, is released. Appends are amortized O(1).
func (v *Vec[T, A]) Append(x T) {
	if v.size == v.Cap() {
		v.grow()
	}
	v.storage()[v.size] = x
	v.size++
}

// TryAppend adds x at the end of v if that needs no allocation.
// Returns ErrWouldBlock if v is full.
func (v *Vec[T, A]) TryAppend(x T) error {
	if v.size == v.Cap() {
		return ErrWouldBlock
	}
	v.storage()[v.size] = x
	v.size++
	return nil
}

// grow doubles the capacity. The new block is filled before the old storage
// is given up.
func (v *Vec[T, A]) grow() {
	old := v.Cap()
	n := old * 2
	if n <= old {
		panic("smallvec: capacity overflow")
	}
	block := allocBlock[T](n)
	copy(block, v.storage()[:v.size])
	v.adopt(block, v.size)
}

// adopt makes block, holding size live elements, the active storage.
// The caller gives up ownership of block.
func (v *Vec[T, A]) adopt(block []T, size int) {
	if v.mode == modeHeap {
		releaseBlock(v.heap)
	} else {
		clear(v.inlineSlots())
	}
	v.heap = block
	v.size = size
	v.mode = modeHeap
}

// toInline releases the heap block, if any, and switches to inline mode.
// The inline slots are zero after a switch.
func (v *Vec[T, A]) toInline() {
	if v.mode != modeHeap {
		return
	}
	releaseBlock(v.heap)
	v.heap = nil
	v.mode = modeInline
}
