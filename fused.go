// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// YieldThen passes a value to the peer and then continues with next.
// Fuses Perform(Yield[T]{Value: v}) + Then.
func YieldThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Yield[T]{Value: v}), next)
}

// NextBind consumes the next datum and passes it to f. The datum is nil
// once the peer has terminated or closed the stream.
// Fuses Perform(Next{}) + Bind.
func NextBind[B any](f func(any) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Next{}), f)
}

// HandoffThen trades execution with the peer and continues with next.
// Fuses Perform(Handoff{}) + Then.
func HandoffThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Handoff{}), next)
}

// Done finishes a protocol with the result a. A child protocol reaching
// Done has returned: the parent observes nil from its next From.
func Done[A any](a A) kont.Eff[A] {
	return kont.Pure(a)
}

// Loop runs a recursive protocol (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return Loop(left, step)
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}
