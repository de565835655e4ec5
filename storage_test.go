// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"testing"
	"unsafe"
)

// White-box tests for storage identity: Data must point at the embedded
// array exactly when the Vec is inline.

func inlineAddr[T any, A Inline[T]](v *Vec[T, A]) unsafe.Pointer {
	return unsafe.Pointer(&v.inline)
}

func dataAddr[T any, A Inline[T]](v *Vec[T, A]) unsafe.Pointer {
	return unsafe.Pointer(v.Data())
}

// checkInvariants verifies the representation invariants of v.
func checkInvariants[T any, A Inline[T]](t *testing.T, v *Vec[T, A]) {
	t.Helper()
	if v.size < 0 || v.size > v.Cap() {
		t.Fatalf("size %d outside [0, %d]", v.size, v.Cap())
	}
	switch v.mode {
	case modeInline:
		if v.heap != nil {
			t.Fatal("inline Vec holds a heap block")
		}
		if v.Cap() != len(v.inline) {
			t.Fatalf("inline Cap: got %d, want %d", v.Cap(), len(v.inline))
		}
		if dataAddr(v) != inlineAddr(v) {
			t.Fatal("inline Vec: Data does not point at the embedded array")
		}
	case modeHeap:
		if v.heap == nil {
			t.Fatal("heap Vec without a block")
		}
		if dataAddr(v) == inlineAddr(v) {
			t.Fatal("heap Vec: Data points at the embedded array")
		}
	default:
		t.Fatalf("unknown mode %d", v.mode)
	}
}

// TestSizedStorageIdentity tests sized construction for every s on both sides of N.
func TestSizedStorageIdentity(t *testing.T) {
	for s := 0; s <= 3; s++ {
		v := Make[int, [3]int](s)
		checkInvariants(t, v)
		if v.Cap() != 3 || dataAddr(v) != inlineAddr(v) {
			t.Fatalf("Make(%d): Cap=%d, inline data=%v", s, v.Cap(), dataAddr(v) == inlineAddr(v))
		}
	}
	for s := 4; s <= 64; s++ {
		v := Make[int, [3]int](s)
		checkInvariants(t, v)
		if v.Cap() != s || dataAddr(v) == inlineAddr(v) {
			t.Fatalf("Make(%d): Cap=%d, inline data=%v", s, v.Cap(), dataAddr(v) == inlineAddr(v))
		}
		v.Release()
	}
}

// TestMoveTransfersBlock tests that moving a heap Vec hands over the block itself.
func TestMoveTransfersBlock(t *testing.T) {
	src := Of[int, [3]int](1, 2, 3, 4, 5)
	data := dataAddr(src)

	dst := src.Move()
	if dataAddr(dst) != data {
		t.Fatal("Move: destination does not hold the source block")
	}
	if src.Len() != 0 || src.Cap() != 3 || dataAddr(src) != inlineAddr(src) {
		t.Fatalf("Move: source got Len=%d Cap=%d, want empty inline", src.Len(), src.Cap())
	}
	checkInvariants(t, src)
	checkInvariants(t, dst)
	dst.Release()
}

// TestMoveInlineCopies tests that moving an inline Vec copies into the
// destination's own array and leaves the source intact.
func TestMoveInlineCopies(t *testing.T) {
	src := Of[int, [3]int](1, 2)
	dst := src.Move()

	if dataAddr(dst) != inlineAddr(dst) || dataAddr(dst) == dataAddr(src) {
		t.Fatal("Move(inline): destination must use its own embedded array")
	}
	if src.Len() != 2 || src.At(0) != 1 || src.At(1) != 2 {
		t.Fatalf("Move(inline): source changed to %v", src)
	}
	checkInvariants(t, src)
	checkInvariants(t, dst)
}

// TestGrowthClearsInline tests that inline slots are zeroed once a Vec moves
// to the heap, so stale references do not outlive the switch.
func TestGrowthClearsInline(t *testing.T) {
	x, y, z := new(int), new(int), new(int)
	var v Vec[*int, [3]*int]
	v.Append(x)
	v.Append(y)
	v.Append(z)
	v.Append(nil)
	defer v.Release()

	for i, p := range v.inline {
		if p != nil {
			t.Fatalf("inline slot %d still set after growth", i)
		}
	}
	if v.At(0) != x || v.At(1) != y || v.At(2) != z {
		t.Fatal("elements lost during growth")
	}
	checkInvariants(t, &v)
}

// TestCopyAssignReuse tests that copy assignment keeps a large enough
// destination block and replaces a too small one.
func TestCopyAssignReuse(t *testing.T) {
	src := Of[int, [3]int](1, 2, 3, 4)

	big := Make[int, [3]int](10)
	block := dataAddr(big)
	big.CopyFrom(src)
	if dataAddr(big) != block {
		t.Fatal("CopyFrom: large destination block was not reused")
	}
	if big.Cap() != 10 || big.Len() != 4 {
		t.Fatalf("CopyFrom reuse: got Cap=%d Len=%d, want 10, 4", big.Cap(), big.Len())
	}
	for i, x := range big.heap[4:] {
		if x != 0 {
			t.Fatalf("stale slot %d: got %d, want 0", 4+i, x)
		}
	}

	tiny := Of[int, [3]int](9, 9, 9, 9, 9, 9, 9)
	tiny.Clear()
	tiny.Append(1)
	tiny.Append(1)
	tiny.Append(1)
	tiny.Append(1) // Cap 6
	tiny.CopyFrom(Of[int, [3]int](1, 2, 3, 4, 5, 6, 7, 8))
	if tiny.Cap() != 8 || tiny.Len() != 8 {
		t.Fatalf("CopyFrom realloc: got Cap=%d Len=%d, want 8, 8", tiny.Cap(), tiny.Len())
	}

	for _, v := range []*Vec[int, [3]int]{src, big, tiny} {
		checkInvariants(t, v)
		v.Release()
	}
}

// TestModeString tests the mode names used in diagnostics.
func TestModeString(t *testing.T) {
	if modeInline.String() != "inline" || modeHeap.String() != "heap" {
		t.Fatalf("mode names: got %q, %q", modeInline, modeHeap)
	}
}

// TestRoundToPow2 tests handoff capacity rounding.
func TestRoundToPow2(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 4},
		{5, 8},
		{8, 8},
		{9, 16},
		{1000, 1024},
	}
	for _, tt := range tests {
		if got := roundToPow2(tt.input); got != tt.expected {
			t.Fatalf("roundToPow2(%d) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
