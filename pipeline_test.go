// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"code.hybscloud.com/coro"
)

// TestNestedCumulativeSum composes two parent/child pairings: the innermost
// generator yields 1..4, the middle coroutine forwards cumulative sums, and
// the outer consumer observes 1, 3, 6, 10. The pairings are independent;
// the middle party is a child on one channel and a parent on the other.
func TestNestedCumulativeSum(t *testing.T) {
	defer goleak.VerifyNone(t)

	middle := coro.New(func(parent *coro.Channel, _ any) {
		inner := coro.New(func(parent *coro.Channel, _ any) {
			for num := 1; num < 5; num++ {
				parent.YieldTo(num)
			}
		}, nil)

		sum := 0
		for v := inner.From(); v != nil; v = inner.From() {
			sum += v.(int)
			parent.YieldTo(sum)
		}
	}, nil)

	assert.Equal(t, []int{1, 3, 6, 10}, ints(drain(middle)))
}

// TestStarNetwork mediates communication between two children through the
// parent acting as a broker.
func TestStarNetwork(t *testing.T) {
	defer goleak.VerifyNone(t)

	first := coro.New(func(parent *coro.Channel, _ any) {
		parent.YieldTo("for parent: hello")
		parent.YieldTo("for second child: hi")
	}, nil)
	var got []string
	second := coro.New(func(parent *coro.Channel, _ any) {
		for v := parent.From(); v != nil; v = parent.From() {
			got = append(got, v.(string))
		}
	}, nil)

	var direct []string
	for v := first.From(); v != nil; v = first.From() {
		msg := v.(string)
		if len(msg) > 18 && msg[:18] == "for second child: " {
			second.YieldTo(msg[18:])
		} else {
			direct = append(direct, msg)
		}
	}
	second.CloseAndJoin()

	assert.Equal(t, []string{"for parent: hello"}, direct)
	assert.Equal(t, []string{"hi"}, got)
}

// TestChannelAsPayload yields a channel through a channel: the child starts
// its own generator and hands the grandchild's channel up for the parent to
// drain directly.
func TestChannelAsPayload(t *testing.T) {
	defer goleak.VerifyNone(t)

	child := coro.New(func(parent *coro.Channel, _ any) {
		sub := coro.New(func(parent *coro.Channel, _ any) {
			parent.YieldTo(10)
			parent.YieldTo(20)
		}, nil)
		parent.YieldTo(sub)
	}, nil)

	sub := child.From().(*coro.Channel)
	assert.Equal(t, []int{10, 20}, ints(drain(sub)))

	child.CloseAndJoin()
}
