// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended operation as the calling party of ch and
// resumes the protocol to its next effect or completion. One channel
// operation runs per call, which makes it straightforward to drive a
// protocol from an external callback loop: perform one Advance per tick.
//
// The dispatched operation itself may park until the peer hands control
// back, exactly as the corresponding channel method would.
func Advance[R any](ch *Channel, susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	cop, ok := susp.Op().(directDispatcher)
	if !ok {
		panic("coro: unhandled effect in Advance")
	}
	result, next := susp.Resume(cop.DispatchDirect(ch))
	return result, next
}
