// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"code.hybscloud.com/coro"
)

func TestGeneratorSum(t *testing.T) {
	defer goleak.VerifyNone(t)

	child := coro.New(func(parent *coro.Channel, _ any) {
		for num := 0; num < 4; num++ {
			parent.YieldTo(num)
		}
	}, nil)

	sum := 0
	for v := child.From(); v != nil; v = child.From() {
		sum += v.(int)
	}
	if sum != 6 {
		t.Fatalf("sum got %d, want 6", sum)
	}
}

// TestFlow pins the exact alternation of the two parties across creation,
// every yield, and termination. The child runs up to its first yield before
// New returns, and control strictly alternates on every switch thereafter.
func TestFlow(t *testing.T) {
	defer goleak.VerifyNone(t)

	log := make(chan string, 100)

	log <- "create enter"
	child := coro.New(func(parent *coro.Channel, arg any) {
		log <- fmt.Sprint("child enter arg=", arg)
		for i := 1; i < 4; i++ {
			log <- fmt.Sprint("child yield enter v=", i)
			parent.YieldTo(i)
			log <- fmt.Sprint("child yield leave v=", i)
		}
		log <- "child leave"
	}, "seed")
	log <- "create leave"

	log <- "consume enter"
	var received []int
	for {
		v := child.From()
		log <- fmt.Sprint("from leave v=", v)
		if v == nil {
			break
		}
		received = append(received, v.(int))
	}
	log <- "consume leave"
	close(log)

	var lines []string
	for l := range log {
		lines = append(lines, l)
	}

	assert.Equal(t, []int{1, 2, 3}, received)
	assert.Equal(t, []string{
		"create enter",
		"child enter arg=seed",
		"child yield enter v=1",
		"create leave",
		"consume enter",
		"from leave v=1",
		"child yield leave v=1",
		"child yield enter v=2",
		"from leave v=2",
		"child yield leave v=2",
		"child yield enter v=3",
		"from leave v=3",
		"child yield leave v=3",
		"child leave",
		"from leave v=<nil>",
		"consume leave",
	}, lines)
}

func TestTrivialChild(t *testing.T) {
	defer goleak.VerifyNone(t)

	ran := false
	child := coro.New(func(_ *coro.Channel, _ any) {
		ran = true
	}, nil)

	if !ran {
		t.Fatal("child did not run before New returned")
	}
	if v := child.From(); v != nil {
		t.Fatalf("From on terminated child got %v, want nil", v)
	}
}

func TestNewGivenMemory(t *testing.T) {
	defer goleak.VerifyNone(t)

	block := make([]byte, 32768)
	child := coro.NewGivenMemory(func(parent *coro.Channel, arg any) {
		parent.YieldTo(arg)
	}, "hello", block)

	if v := child.From(); v != "hello" {
		t.Fatalf("got %v, want hello", v)
	}
	if v := child.From(); v != nil {
		t.Fatalf("got %v, want nil after termination", v)
	}
}

func TestChannelSize(t *testing.T) {
	if coro.ChannelSize == 0 {
		t.Fatal("ChannelSize must be non-zero")
	}
}

// TestMorse seeds the generator pattern with the Morse client's encoding:
// the child walks the sentence and yields one mark/space pixel at a time
// while all loop state stays in its locals.
func TestMorse(t *testing.T) {
	defer goleak.VerifyNone(t)

	table := map[rune]string{
		'E': " -  ",
		'S': " - - -  ",
		'T': " ---  ",
	}

	child := coro.New(func(parent *coro.Channel, sentence any) {
		for _, letter := range strings.ToUpper(sentence.(string)) {
			pixels := table[letter]
			for i := range pixels {
				parent.YieldTo(pixels[i : i+1])
			}
		}
	}, "test")

	var sb strings.Builder
	for v := child.From(); v != nil; v = child.From() {
		sb.WriteString(v.(string))
	}
	sb.WriteString("\n")

	if got, want := sb.String(), " ---  - -  - - -  ---  \n"; got != want {
		t.Fatalf("morse got %q, want %q", got, want)
	}
}
