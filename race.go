// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package smallvec

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent Handoff tests, whose slot accesses are
// ordered by atomix acquire-release pairs the detector cannot observe.
const RaceEnabled = true
