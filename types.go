// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

// Inline is the constraint for the inline buffer of a [Vec].
//
// The array length is the inline capacity N: the number of elements a Vec
// holds without allocating. Go has no constant type parameters, so N is
// spelled as an array type:
//
//	var v smallvec.Vec[int, [8]int] // N = 8
//	var s smallvec.Small[int]       // N = 3
type Inline[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[24]T | ~[32]T | ~[48]T | ~[64]T
}

// Small is a [Vec] with the default inline capacity of 3.
type Small[T any] = Vec[T, [DefaultInline]T]

// DefaultInline is the inline capacity of [Small].
const DefaultInline = 3

// mode tags the storage a Vec currently uses.
type mode uint8

const (
	modeInline mode = iota // elements live in the embedded array
	modeHeap               // elements live in an owned block
)

func (m mode) String() string {
	if m == modeHeap {
		return "heap"
	}
	return "inline"
}

// noCopy makes go vet report by-value copies of a Vec.
// A copied Vec would share its heap block with the original.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
