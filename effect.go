// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Every channel effect is dispatched in one of two worlds. Direct dispatch
// runs as the calling party of a live channel and blocks through the channel
// operations themselves. Stepped dispatch runs a reified child in place:
// it is non-blocking, returns iox.ErrWouldBlock when the operation cannot
// make progress, and reports whether control passes to the parent after a
// successful dispatch.

// directDispatcher is the structural interface for calling-party dispatch.
type directDispatcher interface {
	DispatchDirect(ch *Channel) kont.Resumed
}

// steppedDispatcher is the structural interface for reified-child dispatch.
type steppedDispatcher interface {
	DispatchStepped(ch *Channel) (v kont.Resumed, yields bool, err error)
}

// Yield is the effect operation for passing a value to the peer.
// Perform(Yield[T]{Value: v}) deposits v and hands execution over; it
// resumes when the peer hands execution back.
type Yield[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// DispatchDirect handles Yield as the calling party.
func (y Yield[T]) DispatchDirect(ch *Channel) kont.Resumed {
	ch.YieldTo(y.Value)
	return struct{}{}
}

// DispatchStepped handles Yield for a reified child: deposit, then yield
// control. Never blocks; like the native yield, it overwrites whatever the
// cell holds.
func (y Yield[T]) DispatchStepped(ch *Channel) (kont.Resumed, bool, error) {
	ch.value = y.Value
	return struct{}{}, true, nil
}

// Next is the effect operation for consuming the next datum from the peer.
// Perform(Next{}) resumes with the payload, or with nil once the peer has
// terminated or closed the stream. The payload is untyped because nil must
// remain distinguishable from every user datum.
type Next struct {
	kont.Phantom[any]
}

// DispatchDirect handles Next as the calling party.
func (Next) DispatchDirect(ch *Channel) kont.Resumed {
	return ch.From()
}

// DispatchStepped handles Next for a reified child. Non-blocking: returns
// iox.ErrWouldBlock while the value cell is empty, which hands control to
// the parent until it deposits a datum or closes.
func (Next) DispatchStepped(ch *Channel) (kont.Resumed, bool, error) {
	if notFilled == ch.value {
		return nil, false, iox.ErrWouldBlock
	}
	v := ch.value
	ch.value = notFilled
	return v, false, nil
}

// Handoff is the effect operation for trading execution without payload
// semantics, the protocol-world rendition of Channel.Switch.
type Handoff struct {
	kont.Phantom[struct{}]
}

// DispatchDirect handles Handoff as the calling party.
func (Handoff) DispatchDirect(ch *Channel) kont.Resumed {
	ch.Switch()
	return struct{}{}
}

// DispatchStepped handles Handoff for a reified child: yield control.
func (Handoff) DispatchStepped(ch *Channel) (kont.Resumed, bool, error) {
	return struct{}{}, true, nil
}
