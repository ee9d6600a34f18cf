// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"code.hybscloud.com/coro"
)

// drain consumes every datum from ch until the child terminates, releasing
// the channel. Used by generator-style tests.
func drain(ch *coro.Channel) (out []any) {
	for v := ch.From(); v != nil; v = ch.From() {
		out = append(out, v)
	}
	return
}

// ints unwraps a drained payload slice into plain integers.
func ints(in []any) (out []int) {
	for _, v := range in {
		out = append(out, v.(int))
	}
	return
}
