// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coro provides stackful, asymmetric, cooperative coroutines for
// generator functions, sequential pipelines, state machines, and other uses
// where concurrency, but not parallelism, is required, with a possibly very
// high rate of switching between coroutines.
//
// Each coroutine carries its own full call stack, so it can suspend and
// resume from any nesting depth while preserving local state. A parent and a
// child are joined by a [Channel]: a single rendezvous record holding the
// suspended party's hand-off state and a one-slot value cell. At any instant
// exactly one of the two parties runs; every write performed before a switch
// is visible to the peer when it resumes.
//
// # Architecture
//
//   - Backends: the default backend runs each child on its own goroutine with
//     a strictly alternating handoff gate built on bounded lock-free SPSC
//     token queues via [code.hybscloud.com/lfq]; [NewExpr] and [NewCont]
//     instead reify the child as a one-shot continuation on
//     [code.hybscloud.com/kont] and run it on the caller's goroutine.
//   - Blocking: the lock-free gate waits with adaptive backoff
//     ([code.hybscloud.com/iox.Backoff]); the coro_condvar build tag (selected
//     automatically under the race detector) swaps in a sync.Cond gate.
//   - Non-blocking: stepped dispatch of reified children returns
//     [code.hybscloud.com/iox.ErrWouldBlock] at the control-transfer boundary.
//
// # API Topologies
//
//   - Operations: [New], [NewGivenMemory], [Channel.YieldTo], [Channel.From],
//     [Channel.CloseAndJoin], [Channel.Switch]. A nil payload is never user
//     data; it always means end of stream.
//   - Cont-world: [YieldThen], [NextBind], [HandoffThen], [Loop], executed on
//     a channel via [Exec] or [ExecError].
//   - Expr-world: zero-allocation variants [ExprYieldThen], [ExprNextBind],
//     [ExprHandoffThen], [ExprDone], [ExprLoop]. Bridge via [Reify] and
//     [Reflect].
//   - Stepping: [Step] and [Advance] evaluate a calling-party protocol one
//     effect at a time, making it easy to drive from an external callback
//     loop such as an audio subsystem.
//
// # Example
//
//	child := coro.New(func(parent *coro.Channel, arg any) {
//		for i := 0; i < 4; i++ {
//			n := i
//			parent.YieldTo(&n)
//		}
//	}, nil)
//	sum := 0
//	for v := child.From(); v != nil; v = child.From() {
//		sum += *v.(*int)
//	}
package coro
