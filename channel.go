// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"unsafe"
)

// notFilled marks the value cell as logically empty. It is the address of a
// private allocation, so no user payload can ever compare equal to it. The
// pointee must have non-zero size: zero-size allocations share an address in
// Go, which would let a user datum collide with the sentinel.
var notFilled any = new(byte)

// Entry is the top-level function of a child coroutine. It receives the
// channel back to its parent and the argument passed at creation. Returning
// from the entry terminates the child; the parent observes this as a nil
// result from [Channel.From].
type Entry func(parent *Channel, arg any)

// Channel is the rendezvous record between exactly one parent/child pairing.
// Its identity is its address; the parent holds the only long-lived
// reference. The record is never accessed by both parties at once: each
// party mutates it only while it holds control.
type Channel struct {
	// gate parks whichever party is currently inactive and enforces the
	// strict alternation of control between the two.
	gate gate

	// inChild records which party runs next gate operation. Read and
	// written only by the running party.
	inChild bool

	// entry is the child's top-level function. Nulled exactly once, just
	// before the final transfer back to the parent, when the child body
	// has returned. Reified children leave it nil and track liveness in
	// reified instead.
	entry Entry

	// value is the one-slot rendezvous cell: a user payload, nil for end
	// of stream, or notFilled when logically empty.
	value any

	// reified is non-nil for continuation-backed children.
	reified *reifiedState

	// releaseAfter and releaseFn reclaim backing resources after the
	// child terminates. Installed by New, absent for NewGivenMemory.
	releaseAfter any
	releaseFn    func(any)

	serial Serial
}

// ChannelSize is the size in bytes of a channel record, for callers that
// budget static storage the way the native given-memory layout does.
const ChannelSize = unsafe.Sizeof(Channel{})

// Serial returns the serial number assigned to this channel.
func (ch *Channel) Serial() Serial {
	return ch.serial
}

// active reports whether the child body has not yet returned. The same
// condition the native backend reads from the nulled entry pointer.
func (ch *Channel) active() bool {
	if ch.reified != nil {
		return ch.reified.live()
	}
	return ch.entry != nil
}

// release runs the release hook at most once.
func (ch *Channel) release() {
	if fn := ch.releaseFn; fn != nil {
		ch.releaseFn = nil
		fn(ch.releaseAfter)
	}
}

// swap hands control to the peer and parks the caller until the peer hands
// control back. For reified children there is no second execution context:
// the child's continuation is advanced in place on the caller's goroutine.
func (ch *Channel) swap() {
	if ch.reified != nil {
		ch.advanceReified()
		return
	}
	was := 0
	if ch.inChild {
		was = 1
	}
	ch.inChild = !ch.inChild
	ch.gate.post(1 - was)
	ch.gate.wait(was)
}
