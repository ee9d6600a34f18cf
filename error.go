// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// channelErrorHandler handles both channel and error effects. Channel ops
// dispatch as the calling party; error ops short-circuit on Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type channelErrorHandler[E, A any] struct {
	ch     *Channel
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Channel+Error handler.
// Dispatch order: Channel → Error.
func (h channelErrorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if cop, ok := op.(directDispatcher); ok {
		return cop.DispatchDirect(h.ch), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("coro: unhandled effect in channelErrorHandler")
}

// ExecError runs a protocol with error handling as the calling party of ch.
// Returns Either[E, R] — Right on success, Left on Throw. A consumer that
// throws mid-stream leaves the channel exactly where the last dispatched
// operation left it; the caller remains responsible for CloseAndJoin.
func ExecError[E, R any](ch *Channel, protocol kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := channelErrorHandler[E, R]{ch: ch, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an Expr protocol with error handling as the calling
// party of ch. Returns Either[E, R] — Right on success, Left on Throw.
func ExecErrorExpr[E, R any](ch *Channel, protocol kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := channelErrorHandler[E, R]{ch: ch, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}
