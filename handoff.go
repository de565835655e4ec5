// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Handoff passes Vecs from one goroutine to another by ownership transfer.
//
// It is a bounded single-producer single-consumer ring (Lamport ring buffer
// with cached indexes). Each slot holds a Vec. A heap-mode Vec passes through
// without copying its elements: the block moves from the sender into the
// slot and from the slot into the receiver. Inline Vecs are copied, which
// costs at most N element copies.
//
// Exactly one goroutine may call Send/SendWait and exactly one may call
// Recv/RecvWait.
type Handoff[T any, A Inline[T]] struct {
	_          pad
	head       atomix.Uint64 // Receiver reads from here
	_          pad
	cachedTail uint64 // Receiver's cached view of tail
	_          pad
	tail       atomix.Uint64 // Sender writes here
	_          pad
	cachedHead uint64 // Sender's cached view of head
	_          pad
	slots      []Vec[T, A]
	mask       uint64
}

// NewHandoff creates a Handoff with room for capacity undelivered Vecs.
// Capacity rounds up to the next power of 2.
//
// Panics if capacity < 2.
func NewHandoff[T any, A Inline[T]](capacity int) *Handoff[T, A] {
	if capacity < 2 {
		panic("smallvec: handoff capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	return &Handoff[T, A]{
		slots: make([]Vec[T, A], n),
		mask:  n - 1,
	}
}

// Send moves v into the ring (sender only). On success v is empty and
// inline, and the receiver owns what v held.
// Returns ErrWouldBlock if the ring is full; v is unchanged.
func (h *Handoff[T, A]) Send(v *Vec[T, A]) error {
	tail := h.tail.LoadRelaxed()
	if tail-h.cachedHead > h.mask {
		h.cachedHead = h.head.LoadAcquire()
		if tail-h.cachedHead > h.mask {
			return ErrWouldBlock
		}
	}

	slot := &h.slots[tail&h.mask]
	slot.MoveFrom(v)
	v.Clear()
	h.tail.StoreRelease(tail + 1)
	return nil
}

// Recv moves the oldest sent Vec into dst (receiver only), releasing
// anything dst held before.
// Returns ErrWouldBlock if nothing has been sent; dst is unchanged.
func (h *Handoff[T, A]) Recv(dst *Vec[T, A]) error {
	head := h.head.LoadRelaxed()
	if head >= h.cachedTail {
		h.cachedTail = h.tail.LoadAcquire()
		if head >= h.cachedTail {
			return ErrWouldBlock
		}
	}

	slot := &h.slots[head&h.mask]
	dst.MoveFrom(slot)
	slot.Clear()
	h.head.StoreRelease(head + 1)
	return nil
}

// SendWait is like Send but spins until a slot is free.
func (h *Handoff[T, A]) SendWait(v *Vec[T, A]) {
	sw := spin.Wait{}
	for h.Send(v) != nil {
		sw.Once()
	}
}

// RecvWait is like Recv but spins until a Vec arrives.
func (h *Handoff[T, A]) RecvWait(dst *Vec[T, A]) {
	sw := spin.Wait{}
	for h.Recv(dst) != nil {
		sw.Once()
	}
}

// Cap returns the number of slots.
func (h *Handoff[T, A]) Cap() int {
	return int(h.mask + 1)
}
