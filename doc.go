// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package smallvec provides a growable sequence with inline storage.
//
// A [Vec] keeps up to N elements inside the Vec value itself and only
// allocates a separate block once N is exceeded. Small collections, the
// common case, never touch the allocator; large ones grow without bound.
//
// # Quick Start
//
// N is given as an array type. [Small] uses the default N = 3:
//
//	var v smallvec.Small[int]       // empty, inline, Cap() == 3
//	v.Append(1)
//	v.Append(2)
//	v.Append(3)                     // still inline
//	v.Append(4)                     // grows: heap, Cap() == 6
//
//	w := smallvec.Of[string, [8]string]("a", "b") // N = 8
//	u := smallvec.Make[float64, [4]float64](16)   // heap, Cap() == 16
//
// # Storage Modes
//
// A Vec is in exactly one of two modes:
//
//	inline: elements live in the embedded array, Cap() == N
//	heap:   elements live in a block owned by this Vec alone
//
// [Vec.IsInline] reports the mode. The mode is an explicit tag; it is never
// inferred from pointer identity.
//
// Sizing rules:
//
//	Make(n), n <= N  → inline, Cap() == N
//	Make(n), n > N   → heap, Cap() == n (no slack)
//	Append when full → heap, Cap() doubles from its current value
//	Clone of heap    → heap, Cap() == Len() (compacted)
//	Clear            → inline, Cap() == N
//
// # Ownership
//
// A heap block has a single owner. Copying a Vec by value would break that,
// so Vec carries a no-copy marker checked by go vet. Use the explicit
// operations instead:
//
//	c := v.Clone()      // independent copy
//	d.CopyFrom(v)       // copy assignment
//	m := v.Move()       // transfer; a heap-mode v is left empty and inline
//	d.MoveFrom(v)       // move assignment
//
// Moving a heap-mode Vec hands over the block without copying elements.
// Moving an inline Vec copies at most N elements and leaves the source as is,
// since the embedded array cannot change owners.
//
// Self-assignment (v.CopyFrom(v), v.MoveFrom(v)) is a no-op.
//
// # Access
//
//	v.At(i), v.Ptr(i), v.Set(i, x)   // unchecked against Len
//	v.Get(i), v.GetPtr(i)            // checked, ErrOutOfRange
//	v.Slice(), v.Data()              // views of live storage
//	v.All(), v.Values(), v.Ptrs()    // iterators
//
// Views and iterators are invalidated by any call that may reallocate or
// change mode: Append, Clear, Release, CopyFrom and MoveFrom.
//
// # Equality
//
// [Equal] requires equal lengths and pairwise equal elements. A Vec is
// never equal to a longer or shorter one, even if one is a prefix of the
// other.
//
// # Error Handling
//
// Checked access returns [ErrOutOfRange]. [Vec.TryAppend] and [Handoff]
// return [ErrWouldBlock], sourced from [code.hybscloud.com/iox]:
//
//	if err := v.TryAppend(x); smallvec.IsWouldBlock(err) {
//	    // full: appending would allocate
//	}
//
// Allocation failure aborts the program, as it does for any Go allocation.
// Growth allocates the new block before giving up the old one.
//
// # Handoff
//
// [Handoff] is a single-producer single-consumer ring that moves Vecs
// between goroutines:
//
//	h := smallvec.NewHandoff[int, [3]int](64)
//
//	go func() { // Producer
//	    for batch := range batches {
//	        h.SendWait(batch) // batch is empty afterwards
//	    }
//	}()
//
//	var got smallvec.Small[int]
//	h.RecvWait(&got) // Consumer
//
// # Block Accounting
//
// [Blocks] reports how many heap blocks have been allocated and released
// process-wide. Live() returning to the same value after a workload means
// every block was given up exactly once.
//
// # Thread Safety
//
// A single Vec is not safe for concurrent mutation. Concurrent readers are
// safe if nobody writes. Distinct Vecs need no synchronization.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic counters and ring indexes, and
// [code.hybscloud.com/spin] for CPU pause instructions in [Handoff].
package smallvec
