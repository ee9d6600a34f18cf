// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !coro_condvar && !race

package coro

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// gateCapacity is the bounded capacity of a gate token queue. Alternation
// keeps at most one token in flight per side; 4 keeps the ring buffer within
// a single cache line.
const gateCapacity = 4

// gateToken is the single pre-allocated token posted through the queues,
// avoiding a per-switch heap escape.
var gateToken = true

// gate is the alternation gate between the two parties of a channel: a pair
// of bounded lock-free SPSC queues used as binary semaphores. Side 0 parks
// the parent, side 1 parks the child. Each queue has exactly one producer
// and one consumer, satisfying the SPSC contract.
//
// This flavour spins with adaptive backoff rather than parking the
// goroutine, trading idle CPU for switch latency. The race detector cannot
// see SPSC's cross-variable memory ordering (store-release on data,
// load-acquire on index), so race builds select the sync.Cond gate instead.
type gate struct {
	sem [2]lfq.SPSC[bool]
}

func (g *gate) init() {
	g.sem[0].Init(gateCapacity)
	g.sem[1].Init(gateCapacity)
}

// post wakes the party parked on side.
func (g *gate) post(side int) {
	var bo iox.Backoff
	for g.sem[side].Enqueue(&gateToken) != nil {
		bo.Wait()
	}
}

// wait parks the caller on side until the peer posts it.
func (g *gate) wait(side int) {
	var bo iox.Backoff
	for {
		if _, err := g.sem[side].Dequeue(); err == nil {
			return
		}
		bo.Wait()
	}
}
