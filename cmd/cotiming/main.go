// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command cotiming measures the round-trip cost of a parent/child switch
// pair and reports it on stderr.
package main

import (
	"fmt"
	"os"
	"time"

	"code.hybscloud.com/coro"
)

const yieldCount = 1 << 22

func main() {
	start := time.Now()

	child := coro.New(func(parent *coro.Channel, _ any) {
		for pass := 0; pass < yieldCount; pass++ {
			parent.YieldTo(&pass)
		}
	}, nil)
	for child.From() != nil {
	}

	elapsed := time.Since(start)

	fmt.Fprintf(os.Stderr, "cotiming: %.1f ns per round-trip (%.1f ns per switch)\n",
		float64(elapsed.Nanoseconds())/yieldCount, float64(elapsed.Nanoseconds())/(2*yieldCount))
}
