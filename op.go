// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Switch hands execution to the peer without any payload semantics. It is
// the raw primitive underneath YieldTo and From, exposed so that callers can
// implement patterns where the two parties are merely trading execution and
// not otherwise cooperating on data. A Switch on a terminated channel is a
// no-op.
func (ch *Channel) Switch() {
	if ch.active() {
		ch.swap()
	}
}

// YieldTo deposits payload in the value cell and hands execution to the
// peer. It returns when the peer hands execution back. A nil payload is the
// end-of-stream marker: a parent yields nil to tell a child waiting in From
// that no more input is coming.
//
// The payload may point into the caller's own stack frame: the frame stays
// live until control returns to the caller, so the peer may read and mutate
// through the pointer in the meantime.
func (ch *Channel) YieldTo(payload any) {
	ch.value = payload
	ch.swap()
}

// From consumes the next datum from the peer, handing execution over if the
// value cell is empty and the child is still live. When the child has
// terminated, From runs the release hook and returns nil; thereafter it
// keeps returning nil.
func (ch *Channel) From() any {
	// when called from the parent, this releases the record once the
	// child has exited
	if ch.active() && notFilled == ch.value {
		ch.swap()
	}

	if !ch.active() {
		ch.release()
		return nil
	}

	v := ch.value
	ch.value = notFilled
	return v
}

// CloseAndJoin signals a child that no more input is coming and waits for it
// to return. If the child is waiting in From, it receives nil, which a
// well-behaved child reacts to by falling out of its consume loop and
// returning. Closing an already-terminated channel releases resources and
// returns immediately.
func (ch *Channel) CloseAndJoin() {
	for ch.active() {
		ch.YieldTo(nil)
	}
	ch.release()
}
