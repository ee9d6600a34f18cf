// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build coro_condvar || race

package coro

import "sync"

// gate is the alternation gate between the two parties of a channel, in its
// condition-variable flavour: a ping-pong under a shared mutex, the direct
// analog of the semaphore pair in the lock-free flavour. Side 0 parks the
// parent, side 1 parks the child.
//
// This flavour parks goroutines in the runtime instead of spinning. Switch
// cost is higher, but every cross-party write is ordered through the mutex,
// which keeps the race detector accurate; race builds select it
// automatically.
type gate struct {
	mu      sync.Mutex
	cond    sync.Cond
	pending [2]int
}

func (g *gate) init() {
	g.pending[0] = 0
	g.pending[1] = 0
	g.cond.L = &g.mu
}

// post wakes the party parked on side.
func (g *gate) post(side int) {
	g.mu.Lock()
	g.pending[side]++
	g.mu.Unlock()
	g.cond.Broadcast()
}

// wait parks the caller on side until the peer posts it.
func (g *gate) wait(side int) {
	g.mu.Lock()
	for g.pending[side] == 0 {
		g.cond.Wait()
	}
	g.pending[side]--
	g.mu.Unlock()
}
