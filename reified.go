// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// reifiedState is the suspended execution of a continuation-backed child.
// Unlike the goroutine backend there is no second execution context: the
// child's "stack" is the defunctionalized frame chain inside the
// suspension, advanced on whichever goroutine holds the parent side.
type reifiedState struct {
	susp *kont.Suspension[struct{}]

	// resume holds the dispatched result of the current operation until
	// control next enters the child. Deferring the Resume call keeps the
	// pure code between two effects running only while the child holds
	// control, so trace order matches the goroutine backend exactly.
	resume  kont.Resumed
	pending bool
}

// live reports whether the child protocol has not yet run to completion.
func (r *reifiedState) live() bool {
	return r.susp != nil
}

// advanceReified runs the reified child until it hands control back: an
// effect that yields control, an effect that cannot make progress
// (iox.ErrWouldBlock), or completion of the protocol.
func (ch *Channel) advanceReified() {
	r := ch.reified
	for r.susp != nil {
		if r.pending {
			v := r.resume
			r.resume = nil
			r.pending = false
			_, r.susp = r.susp.Resume(v)
			continue
		}
		op, ok := r.susp.Op().(steppedDispatcher)
		if !ok {
			panic("coro: unhandled effect in reified child")
		}
		v, yields, err := op.DispatchStepped(ch)
		if err != nil {
			return
		}
		r.resume = v
		r.pending = true
		if yields {
			return
		}
	}
}

// NewExpr starts an Expr-world protocol as a continuation-backed child and
// returns the channel between it and the calling code. fn receives the
// creation argument and builds the child's protocol; the child runs
// immediately, up to its first control transfer, on the caller's own
// goroutine. No goroutine is ever spawned for the child, making this
// backend usable where execution contexts cannot be multiplied, at the cost
// of expressing the child as a protocol value rather than an ordinary
// function.
//
// The resulting channel is driven with the same operations as any other:
// YieldTo, From, CloseAndJoin, Switch.
func NewExpr(fn func(arg any) kont.Expr[struct{}], arg any) *Channel {
	ch := channelPool.Get().(*Channel)
	ch.value = notFilled
	ch.reified = &reifiedState{}
	ch.releaseAfter = ch
	ch.releaseFn = releaseChannel
	ch.serial = nextSerial()

	// springboard, inline: the argument goes straight to fn and the value
	// cell starts out empty, so the parent's first From blocks until the
	// first datum
	_, ch.reified.susp = kont.StepExpr(fn(arg))
	ch.advanceReified()
	return ch
}

// NewCont starts a Cont-world protocol as a continuation-backed child.
// Closure-based counterpart of NewExpr.
func NewCont(fn func(arg any) kont.Eff[struct{}], arg any) *Channel {
	return NewExpr(func(arg any) kont.Expr[struct{}] {
		return kont.Reify(fn(arg))
	}, arg)
}
