// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command cotrace writes the deterministic regression trace to stdout.
// Piping the output through md5sum must produce regress.TraceMD5; that
// comparison is the project's acceptance check.
package main

import (
	"bufio"
	"os"

	"code.hybscloud.com/coro/internal/regress"
)

func main() {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	regress.Trace(w)
}
