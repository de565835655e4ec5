// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import "code.hybscloud.com/atomix"

// Heap block accounting, shared by every Vec in the process.
// Vecs owned by different goroutines update the counters concurrently.
var blocks struct {
	_         pad
	allocated atomix.Int64
	_         pad
	released  atomix.Int64
	_         pad
}

// BlockStats is a snapshot of heap block accounting.
//
// A block is allocated when a Vec leaves inline mode (sized construction
// above the inline capacity, growth, copy) and released when the Vec drops it
// (Clear, Release, growth, assignment). Ownership transfer by [Vec.Move],
// [Vec.MoveFrom] and [Handoff] is neither.
type BlockStats struct {
	Allocated int64
	Released  int64
}

// Live returns the number of blocks currently owned by some Vec.
func (s BlockStats) Live() int64 {
	return s.Allocated - s.Released
}

// Blocks returns the current heap block counters.
//
// The two counters are loaded separately; under concurrent use the snapshot
// may be momentarily inconsistent.
func Blocks() BlockStats {
	return BlockStats{
		Allocated: blocks.allocated.Load(),
		Released:  blocks.released.Load(),
	}
}

// allocBlock returns a new zeroed block of n slots.
func allocBlock[T any](n int) []T {
	b := make([]T, n)
	blocks.allocated.Add(1)
	return b
}

// releaseBlock records that the caller no longer owns b.
// The memory itself is reclaimed by the garbage collector.
func releaseBlock[T any](b []T) {
	if b == nil {
		return
	}
	blocks.released.Add(1)
}
