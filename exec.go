// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// channelHandler implements kont.Handler for channel effects, interpreting
// each operation as the calling party of ch. Blocking: a dispatched Yield or
// Next parks until the peer hands control back.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type channelHandler[R any] struct {
	ch *Channel
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h channelHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	cop, ok := op.(directDispatcher)
	if !ok {
		panic("coro: unhandled effect in channelHandler")
	}
	return cop.DispatchDirect(h.ch), true
}

// Exec runs a Cont-world protocol as the calling party of ch. Either party
// may use it: a parent to drive a child, or a child (from inside its entry)
// to talk to its parent.
func Exec[R any](ch *Channel, protocol kont.Eff[R]) R {
	h := channelHandler[R]{ch: ch}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world protocol as the calling party of ch.
func ExecExpr[R any](ch *Channel, protocol kont.Expr[R]) R {
	h := channelHandler[R]{ch: ch}
	return kont.HandleExpr(protocol, h)
}
