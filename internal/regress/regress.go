// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package regress produces the deterministic regression trace whose MD5 sum
// is pinned as the project's acceptance check. Every scenario drives the
// coroutine API in a fixed order and writes a fixed-format line for each
// observable event, so the trace is reproducible byte for byte across
// backends and platforms.
package regress

import (
	"fmt"
	"io"
	"math"
	"strings"

	"code.hybscloud.com/coro"
)

// TraceMD5 is the pinned MD5 sum of the trace written by Trace.
const TraceMD5 = "bfdad74e6bc7bc9ab906212371eb9f80"

// Trace runs every regression scenario in order, writing the trace to w.
func Trace(w io.Writer) {
	consumerSilent()
	consumer(w)
	nestedGeneratorA(w)
	twoWayExample(w)
	anotherTwoWayExample(w)
	consumerTrivial(w)
	parentToChildTrivial(w)
	childOnParentStack(w)
	starNetwork(w)
	parentThatProvidesBufferForChildToFill(w)
	childModifyingPointerToLocalVariableInParent(w)
	prearrangedStringBuffer(w)
	prearrangedInt(w)
	cooperativeParentThatFinishesBeforeChild(w)
	cooperativeParentThatFinishesAfterChild(w)
	parentFFT(w)
}

// the very simplest thing first, with no output: a generator of 0..3 whose
// sum the parent checks

func consumerSilent() {
	child := coro.New(func(parent *coro.Channel, _ any) {
		for num := 0; num < 4; num++ {
			parent.YieldTo(&num)
		}
	}, "consumer_silent")

	sum := 0
	for nump := child.From(); nump != nil; nump = child.From() {
		sum += *nump.(*int)
	}
	if sum != 6 {
		panic("regress: generator sum mismatch")
	}
}

// the base case is generator functions, in which the parent starts the
// child and the child repeatedly passes things to the parent. it is safe
// for the child to yield pointers to its own local variables - they are
// guaranteed to still be in scope

func generator(w io.Writer) coro.Entry {
	return func(parent *coro.Channel, context any) {
		fmt.Fprintf(w, "generator: spawned from %s\n", context)

		for num := 0; num < 4; num++ {
			parent.YieldTo(&num)
		}

		fmt.Fprintf(w, "generator: no more output is coming\n")
	}
}

func consumer(w io.Writer) {
	fmt.Fprintf(w, "consumer: base case: generator pattern\n")

	child := coro.New(generator(w), "consumer")

	for nump := child.From(); nump != nil; nump = child.From() {
		fmt.Fprintf(w, "consumer: got %d from generator\n", *nump.(*int))
	}

	fmt.Fprintf(w, "consumer: ok\n\n")
}

// another generator example, showing they can be nested

func nestedGeneratorC(w io.Writer) coro.Entry {
	return func(parent *coro.Channel, arg any) {
		fmt.Fprintf(w, "nested_generator_c: spawned from %s\n", arg)

		for num := 1; num < 5; num++ {
			fmt.Fprintf(w, "nested_generator_c: yielding %d to parent\n", num)
			parent.YieldTo(&num)
		}

		fmt.Fprintf(w, "nested_generator_c: no more output is coming\n")
	}
}

func nestedGeneratorB(w io.Writer) coro.Entry {
	return func(parent *coro.Channel, arg any) {
		fmt.Fprintf(w, "nested_generator_b: spawned from %s\n", arg)

		child := coro.New(nestedGeneratorC(w), "nested_generator_b")

		sum := 0
		for nump := child.From(); nump != nil; nump = child.From() {
			val := *nump.(*int)
			sum += val
			fmt.Fprintf(w, "nested_generator_b: got %d, yielding cumulative sum %d to parent\n", val, sum)
			parent.YieldTo(&sum)
		}

		fmt.Fprintf(w, "nested_generator_b: ok, no more output is coming\n")
	}
}

func nestedGeneratorA(w io.Writer) {
	fmt.Fprintf(w, "nested_generator_a: example of multiple nested generator functions\n")
	child := coro.New(nestedGeneratorB(w), "nested_generator_a")

	for nump := child.From(); nump != nil; nump = child.From() {
		fmt.Fprintf(w, "nested_generator_a: got %d\n", *nump.(*int))
	}

	fmt.Fprintf(w, "nested_generator_a: ok\n\n")
}

// communication in both directions, with values built in the child and
// consumed in the parent

func mirror(w io.Writer) coro.Entry {
	return func(parent *coro.Channel, context any) {
		fmt.Fprintf(w, "mirror: spawned from %s\n", context)

		for v := parent.From(); v != nil; v = parent.From() {
			parent.YieldTo(v.(string) + " with goatee")
		}

		fmt.Fprintf(w, "mirror: ok\n")
	}
}

func twoWayExample(w io.Writer) {
	fmt.Fprintf(w, "two_way_example: communication in both directions\n")
	child := coro.New(mirror(w), "two_way_example")

	crew := []string{"kirk", "spock", "mccoy"}

	for _, name := range crew {
		fmt.Fprintf(w, "two_way_example: sending %s to child\n", name)
		child.YieldTo(name)

		reflection := child.From()
		fmt.Fprintf(w, "two_way_example: got %s back from child\n", reflection)
	}

	fmt.Fprintf(w, "two_way_example: no more input is coming\n")

	child.CloseAndJoin()

	fmt.Fprintf(w, "\n")
}

// communication in both directions, controlled by the child

func anotherMirror(w io.Writer) coro.Entry {
	return func(parent *coro.Channel, context any) {
		fmt.Fprintf(w, "another_mirror: spawned from %s\n", context)

		crew := []string{"kirk", "spock", "mccoy"}

		for _, name := range crew {
			fmt.Fprintf(w, "another_mirror: sending %s to parent\n", name)
			parent.YieldTo(name)

			reflection := parent.From()
			fmt.Fprintf(w, "another_mirror: got %s back from parent\n", reflection)
		}

		fmt.Fprintf(w, "another_mirror: done, returning\n")
	}
}

func anotherTwoWayExample(w io.Writer) {
	fmt.Fprintf(w, "another_two_way_example: communication in both directions, controlled by child\n")
	child := coro.New(anotherMirror(w), "another_two_way_example")

	for v := child.From(); v != nil; v = child.From() {
		child.YieldTo(v.(string) + " with goatee")
	}
	fmt.Fprintf(w, "another_two_way_example: ok\n\n")
}

// a generator that doesn't yield anything

func generatorTrivial(w io.Writer) coro.Entry {
	return func(_ *coro.Channel, context any) {
		fmt.Fprintf(w, "generator_trivial: spawned from %s, just returning\n", context)
	}
}

func consumerTrivial(w io.Writer) {
	fmt.Fprintf(w, "consumer_trivial: this should not crash\n")
	child := coro.New(generatorTrivial(w), "consumer_trivial")

	fmt.Fprintf(w, "consumer_trivial: got here, just created child\n")
	for child.From() != nil {
	}

	fmt.Fprintf(w, "consumer_trivial: done\n\n")
}

// a generator with a parent that doesn't yield anything

func parentToChildTrivial(w io.Writer) {
	fmt.Fprintf(w, "parent_to_child_trivial: this should not crash\n")
	child := coro.New(func(parent *coro.Channel, context any) {
		fmt.Fprintf(w, "child_consumer_trivial: spawned from %s\n", context)

		for parent.From() != nil {
		}

		fmt.Fprintf(w, "child_consumer_trivial: ok\n")
	}, "parent_to_child_trivial")

	fmt.Fprintf(w, "parent_to_child_trivial: no more input is coming\n")

	child.CloseAndJoin()

	fmt.Fprintf(w, "parent_to_child_trivial: done\n\n")
}

// a generator using the given-memory interface

func childOnParentStack(w io.Writer) {
	fmt.Fprintf(w, "test_child_on_parent_stack\n")
	var block [32768]byte

	child := coro.NewGivenMemory(generatorTrivial(w), "test_child_on_parent_stack", block[:])
	for child.From() != nil {
	}

	fmt.Fprintf(w, "test_child_on_parent_stack: done\n\n")
}

// star network - communication between children via a parent broker

func starNetwork(w io.Writer) {
	fmt.Fprintf(w, "star_network: mediate communication between multiple children\n")
	firstChild := coro.New(func(parent *coro.Channel, _ any) {
		parent.YieldTo("message for parent: hello")
		parent.YieldTo("message for second child: hi")

		fmt.Fprintf(w, "star_network_first_child: done\n")
	}, nil)
	secondChild := coro.New(func(parent *coro.Channel, _ any) {
		for v := parent.From(); v != nil; v = parent.From() {
			fmt.Fprintf(w, "star_network_second_child: got message: %s\n", v)
		}

		fmt.Fprintf(w, "star_network_second_child: ok\n")
	}, nil)

	for v := firstChild.From(); v != nil; v = firstChild.From() {
		msg := v.(string)
		fmt.Fprintf(w, "star_network: from first child: %s\n", msg)
		if strings.Contains(msg, "for second child: ") {
			secondChild.YieldTo(msg[strings.Index(msg, ": ")+2:])
		}
	}

	fmt.Fprintf(w, "star_network: ok, telling second child no more input is coming\n")

	secondChild.CloseAndJoin()

	fmt.Fprintf(w, "star_network: done\n\n")
}

// passes a buffer to a coroutine which fills it and passes it back

func parentThatProvidesBufferForChildToFill(w io.Writer) {
	bytesPerYield := 13

	buffer := make([]byte, bytesPerYield)

	child := coro.New(func(parent *coro.Channel, context any) {
		perYield := *context.(*int)

		letter := byte('a')

		// child loops over buffers to fill from parent
		for v := parent.From(); v != nil; v = parent.From() {
			dst := v.([]byte)
			for i := 0; i < perYield; i++ {
				dst[i] = letter

				letter++
				if letter > 'z' {
					letter = 'a'
				}
			}

			// and yields them back to parent
			parent.YieldTo(v)
		}
	}, &bytesPerYield)

	for pass := 0; pass < 2; pass++ {
		// parent yields buffer to child...
		child.YieldTo(buffer)

		// ...which fills it and passes it back
		child.From()

		fmt.Fprintf(w, "parent_that_provides_buffer_for_child_to_fill: %s\n", buffer)
	}

	child.CloseAndJoin()
	fmt.Fprintf(w, "\n")
}

func childModifyingPointerToLocalVariableInParent(w io.Writer) {
	child := coro.New(func(parent *coro.Channel, _ any) {
		value := 0
		for v := parent.From(); v != nil; v = parent.From() {
			*v.(*int) = value
			value++

			// and yields the pointer back to parent
			parent.YieldTo(v)
		}
	}, nil)

	for pass := 0; pass < 4; pass++ {
		var num int

		// parent yields pointer to local variable to child...
		child.YieldTo(&num)

		// ...which fills it and passes it back
		nump := child.From().(*int)

		// this should print the same value twice, but only one of the
		// two reads goes through the yielded pointer
		fmt.Fprintf(w, "test_child_modifying_pointer_to_local_variable_in_parent: %d %d\n", num, *nump)
	}

	child.CloseAndJoin()
	fmt.Fprintf(w, "\n")
}

func prearrangedStringBuffer(w io.Writer) {
	buffer := make([]byte, 4)

	child := coro.New(func(parent *coro.Channel, arg any) {
		buf := arg.([]byte)
		for parent.From() != nil {
			for i := range buf {
				buf[i] = byte(int(buf[i]) + ('A' - 'a'))
			}
		}
	}, buffer)

	for _, s := range []string{"abcd", "efgh", "ijkl"} {
		copy(buffer, s)

		// yield a non-nil token that isn't the buffer
		child.YieldTo("")

		// contents of buffer has changed, do we know it?
		fmt.Fprintf(w, "test_prearranged_string_buffer: %s\n", buffer)
	}

	child.CloseAndJoin()
	fmt.Fprintf(w, "\n")
}

func prearrangedInt(w io.Writer) {
	var num int

	child := coro.New(func(parent *coro.Channel, context any) {
		nump := context.(*int)

		for parent.From() != nil {
			*nump += 5
		}
	}, &num)

	for pass := 0; pass < 10; pass++ {
		num = pass

		// yield a non-nil token that isn't a pointer to num
		child.YieldTo("")

		// num has changed, do we know it?
		fmt.Fprintf(w, "test_prearranged_int: %d\n", num)
	}

	child.CloseAndJoin()
	fmt.Fprintf(w, "\n")
}

// under-the-hood functionality, where the two parties are merely handing
// off execution and not otherwise cooperating on logic

func cooperativeChild(w io.Writer) coro.Entry {
	return func(parent *coro.Channel, _ any) {
		for work := 0; work < 6; work++ {
			fmt.Fprintf(w, "cooperative_multitasking_child: %d/6\n", work)

			parent.Switch()
		}
	}
}

func cooperativeParentThatFinishesBeforeChild(w io.Writer) {
	child := coro.New(cooperativeChild(w), nil)

	for work := 0; work < 3; work++ {
		fmt.Fprintf(w, "cooperative_multitasking_parent_that_finishes_before_child: %d/3\n", work)

		child.Switch()
	}

	child.CloseAndJoin()

	fmt.Fprintf(w, "\n")
}

func cooperativeParentThatFinishesAfterChild(w io.Writer) {
	child := coro.New(cooperativeChild(w), nil)

	for work := 0; work < 9; work++ {
		fmt.Fprintf(w, "cooperative_multitasking_parent_that_finishes_after_child: %d/9\n", work)

		child.Switch()
	}

	child.CloseAndJoin()

	fmt.Fprintf(w, "\n")
}

// two concurrent 8-point FFTs which hand off execution at two mid-algorithm
// points, exercising preservation of live floating-point temporaries

var sqrt1_2 = float32(1 / math.Sqrt2)

func fft8WithIntermission(bathroom *coro.Channel, y, x []complex64) {
	// perform four dfts of size 2, two of which are multiplied by a
	// twiddle factor (a -90 degree phase shift)
	a0 := x[0] + x[4]
	a1 := x[0] - x[4]
	a2 := x[2] + x[6]
	a3 := complex(imag(x[2])-imag(x[6]), real(x[6])-real(x[2]))
	a4 := x[1] + x[5]
	a5 := x[1] - x[5]
	a6 := x[3] + x[7]
	a7 := complex(imag(x[3])-imag(x[7]), real(x[7])-real(x[3]))

	// perform two more dfts of size 2
	c0 := a0 + a2
	c1 := a1 + a3
	c2 := a0 - a2
	c3 := a1 - a3
	c4 := a4 + a6
	b5 := a5 + a7
	b6 := a4 - a6
	b7 := a5 - a7

	// intermission
	bathroom.Switch()

	// apply final twiddle factors
	c5 := complex((imag(b5)+real(b5))*sqrt1_2, (imag(b5)-real(b5))*sqrt1_2)
	c6 := complex(imag(b6), -real(b6))
	c7 := complex((imag(b7)-real(b7))*sqrt1_2, -(real(b7)+imag(b7))*sqrt1_2)

	// intermission
	bathroom.Switch()

	// perform four dfts of length two
	y[0] = c0 + c4
	y[1] = c1 + c5
	y[2] = c2 + c6
	y[3] = c3 + c7
	y[4] = c0 - c4
	y[5] = c1 - c5
	y[6] = c2 - c6
	y[7] = c3 - c7
}

func parentFFT(w io.Writer) {
	fmt.Fprintf(w, "parent_fft: two concurrent tasks which use as many fp regs as possible\n")

	child := coro.New(func(parent *coro.Channel, _ any) {
		y := make([]complex64, 8)
		x := []complex64{1, 1i, -1, -1i, 1, 1i, -1, -1i}
		fft8WithIntermission(parent, y, x)

		for i, v := range y {
			fmt.Fprintf(w, "child_fft: y[%d] = %.6g %+.6gi\n", i, real(v), imag(v))
		}
	}, nil)

	y := make([]complex64, 8)
	x := []complex64{0.25, 0.25, 1.25, 0.25, 0.25, 0.25, 0.25, 0.25}
	fft8WithIntermission(child, y, x)

	child.CloseAndJoin()

	for i, v := range y {
		fmt.Fprintf(w, "parent_fft: y[%d] = %.6g %+.6gi\n", i, real(v), imag(v))
	}

	fmt.Fprintf(w, "\n")
}
