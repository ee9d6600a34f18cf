// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"testing"

	"code.hybscloud.com/coro"
	"code.hybscloud.com/kont"
)

// BenchmarkYieldFromRoundTrip measures one full parent→child→parent round
// trip through an echo child: a YieldTo plus a From, two switches.
func BenchmarkYieldFromRoundTrip(b *testing.B) {
	b.ReportAllocs()
	child := coro.New(func(parent *coro.Channel, _ any) {
		for v := parent.From(); v != nil; v = parent.From() {
			parent.YieldTo(v)
		}
	}, nil)

	token := 1
	for b.Loop() {
		child.YieldTo(token)
		child.From()
	}

	child.CloseAndJoin()
}

// BenchmarkSwitch measures a single payload-free hand-off pair.
func BenchmarkSwitch(b *testing.B) {
	b.ReportAllocs()
	stop := false
	child := coro.New(func(parent *coro.Channel, _ any) {
		for !stop {
			parent.Switch()
		}
	}, nil)

	for b.Loop() {
		child.Switch()
	}

	stop = true
	child.Switch()
	child.CloseAndJoin()
}

// BenchmarkCreateJoin measures coroutine creation plus termination,
// exercising the record pool.
func BenchmarkCreateJoin(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		child := coro.New(func(parent *coro.Channel, _ any) {
			parent.YieldTo(1)
		}, nil)
		for child.From() != nil {
		}
	}
}

// BenchmarkReifiedRoundTrip measures the continuation backend's round trip
// through an echo protocol, with no second execution context involved.
func BenchmarkReifiedRoundTrip(b *testing.B) {
	b.ReportAllocs()
	child := coro.NewCont(func(_ any) kont.Eff[struct{}] {
		return coro.Loop(struct{}{}, func(s struct{}) kont.Eff[kont.Either[struct{}, struct{}]] {
			return coro.NextBind(func(v any) kont.Eff[kont.Either[struct{}, struct{}]] {
				if v == nil {
					return coro.Done(kont.Right[struct{}](struct{}{}))
				}
				return coro.YieldThen(v, coro.Done(kont.Left[struct{}, struct{}](s)))
			})
		})
	}, nil)

	token := 1
	for b.Loop() {
		child.YieldTo(token)
		child.From()
	}

	child.CloseAndJoin()
}

// BenchmarkCreateJoinReified measures continuation-backed creation plus
// termination.
func BenchmarkCreateJoinReified(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		child := coro.NewExpr(func(_ any) kont.Expr[struct{}] {
			return coro.ExprYieldThen(1, coro.ExprDone(struct{}{}))
		}, nil)
		for child.From() != nil {
		}
	}
}
