// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"reflect"
	"testing"
	"testing/quick"

	"code.hybscloud.com/coro"
	"code.hybscloud.com/kont"
)

// TestPropertyTransportFIFO proves that for any arbitrarily generated
// sequence of integers, a generator child delivers every datum to the
// parent exactly once, in order, on both backends: no loss, no duplication,
// no reordering.
func TestPropertyTransportFIFO(t *testing.T) {
	propertyGoroutine := func(payload []int) bool {
		child := coro.New(func(parent *coro.Channel, arg any) {
			for _, v := range arg.([]int) {
				parent.YieldTo(v)
			}
		}, payload)

		received := ints(drain(child))
		if len(payload) == 0 && len(received) == 0 {
			return true
		}
		return reflect.DeepEqual(payload, received)
	}

	propertyReified := func(payload []int) bool {
		child := coro.NewExpr(func(arg any) kont.Expr[struct{}] {
			return coro.ExprLoop(arg.([]int), func(s []int) kont.Expr[kont.Either[[]int, struct{}]] {
				if len(s) == 0 {
					return coro.ExprDone(kont.Right[[]int](struct{}{}))
				}
				return coro.ExprYieldThen(s[0], coro.ExprDone(kont.Left[[]int, struct{}](s[1:])))
			})
		}, payload)

		received := ints(drain(child))
		if len(payload) == 0 && len(received) == 0 {
			return true
		}
		return reflect.DeepEqual(payload, received)
	}

	if err := quick.Check(propertyGoroutine, nil); err != nil {
		t.Error(err)
	}
	if err := quick.Check(propertyReified, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyCloseAlwaysJoins proves that a consuming child closed after
// an arbitrary number of deliveries always terminates: the nil marker falls
// out of the consume loop regardless of where the stream stops.
func TestPropertyCloseAlwaysJoins(t *testing.T) {
	property := func(sends uint) bool {
		n := int(sends % 64)

		delivered := 0
		child := coro.New(func(parent *coro.Channel, _ any) {
			for parent.From() != nil {
				delivered++
			}
		}, nil)

		for i := 0; i < n; i++ {
			child.YieldTo(i + 1)
		}
		child.CloseAndJoin()

		return delivered == n
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyTerminationVisibility proves that a generator child delivers
// exactly its n data, that the From after the last datum observes nil, and
// that a further From still observes nil.
func TestPropertyTerminationVisibility(t *testing.T) {
	property := func(yields uint) bool {
		n := int(yields % 16)

		child := coro.New(func(parent *coro.Channel, _ any) {
			for i := 0; i < n; i++ {
				parent.YieldTo(i)
			}
		}, nil)

		got := len(drain(child))
		return got == n && child.From() == nil
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
