// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import "sync"

// channelPool recycles channel records across coroutine lifetimes. It plays
// the role the dynamic allocator plays in the hosted native backend: New
// draws from it and installs a release hook; From and CloseAndJoin return
// the record once they observe termination.
var channelPool = sync.Pool{
	New: func() any { return new(Channel) },
}

// releaseChannel is the release hook installed by New.
func releaseChannel(v any) {
	ch := v.(*Channel)
	ch.entry = nil
	ch.value = notFilled
	ch.reified = nil
	ch.releaseAfter = nil
	channelPool.Put(ch)
}

// springboard is the first and only function executed on behalf of a fresh
// child. It pulls the argument from the value cell, resets the cell so the
// parent's next From blocks until the first datum, runs the child body, and
// performs the final one-way transfer back to the parent. It never hands
// control to the channel again.
func (ch *Channel) springboard() {
	arg := ch.value
	ch.value = notFilled
	ch.entry(ch, arg)
	ch.entry = nil
	ch.gate.post(0)
}

// New starts entry as a child coroutine with the given argument and returns
// the channel between it and the calling code. The child runs immediately,
// up to its first yield, receive, or switch; New returns when the child
// first hands control back.
//
// The channel record is drawn from an internal pool and returned to it after
// the parent observes termination (inside From) or calls CloseAndJoin. Until
// a later constructor draws the released record again, further From calls
// return nil and CloseAndJoin returns immediately. Any other use of a
// released channel, any use once its record has been reused, and using a
// channel the caller does not own are undefined behaviour.
func New(entry Entry, arg any) *Channel {
	ch := channelPool.Get().(*Channel)
	ch.entry = entry
	ch.value = arg
	ch.inChild = true
	ch.releaseAfter = ch
	ch.releaseFn = releaseChannel
	ch.serial = nextSerial()
	ch.gate.init()

	go ch.springboard()

	// control flow resumes here via the first switch in the child
	ch.gate.wait(0)
	return ch
}

// NewGivenMemory starts entry as a child coroutine using caller-supplied
// backing memory. Goroutine stacks are runtime-managed and grow on demand,
// so the block is not consumed; the parameter keeps call sites portable from
// backends that carve the child stack and channel record out of the block.
// The block must be at least ChannelSize bytes on such backends, and sized
// for the child's deepest call chain.
//
// No release hook is installed: the caller owns the block, and the channel
// record is not pooled.
func NewGivenMemory(entry Entry, arg any, block []byte) *Channel {
	_ = block

	ch := &Channel{
		entry:   entry,
		value:   arg,
		inChild: true,
		serial:  nextSerial(),
	}
	ch.gate.init()

	go ch.springboard()

	ch.gate.wait(0)
	return ch
}
