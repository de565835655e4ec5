// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrOutOfRange is returned by the checked accessors [Vec.Get] and
// [Vec.GetPtr] when the index is negative or not less than [Vec.Len].
//
// Unlike [ErrWouldBlock], ErrOutOfRange is a failure: the caller asked for
// an element that does not exist.
var ErrOutOfRange = errors.New("smallvec: index out of range")

// ErrWouldBlock indicates the operation cannot proceed without allocating
// or waiting.
//
// For [Vec.TryAppend]: the Vec is full and appending would allocate
// For [Handoff.Send]: every slot holds an undelivered Vec
// For [Handoff.Recv]: no Vec has been sent
//
// ErrWouldBlock is a control flow signal, not a failure.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// IsOutOfRange reports whether err is, or wraps, [ErrOutOfRange].
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}
