// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command comorse renders a sentence as Morse code, one mark or space per
// yielded value. It demonstrates the benefit of a generator function for
// producing samples according to logic that requires internal state: written
// as a callback, the loop structure would be inside out, with the loop
// control state stored outside the producing function.
package main

import (
	"os"
	"strings"

	"code.hybscloud.com/coro"
)

// morseTable maps an upper-case character to its mark/space pixel string.
// Characters without an encoding render as word space.
var morseTable = map[rune]string{
	' ':  "      ",
	'A':  " - ---  ",
	'B':  " --- - - -  ",
	'C':  " --- - --- -  ",
	'D':  " --- - -  ",
	'E':  " -  ",
	'F':  " - - --- -  ",
	'G':  " --- --- -  ",
	'H':  " - - - -  ",
	'I':  " - -  ",
	'J':  " --- --- --- -  ",
	'K':  " --- - ---  ",
	'L':  " - --- - -  ",
	'M':  " --- ---  ",
	'N':  " --- -  ",
	'O':  " --- --- ---  ",
	'P':  " - --- --- -  ",
	'Q':  " --- --- - ---  ",
	'R':  " - --- -  ",
	'S':  " - - -  ",
	'T':  " ---  ",
	'U':  " - - ---  ",
	'V':  " - - - ---  ",
	'W':  " - --- ---  ",
	'X':  " --- - - ---  ",
	'Y':  " --- - --- ---  ",
	'Z':  " --- --- - -  ",
	'1':  " - --- --- --- ---  ",
	'2':  " - - --- --- ---  ",
	'3':  " - - - --- ---  ",
	'4':  " - - - - ---  ",
	'5':  " - - - - -  ",
	'6':  " --- - - - -  ",
	'7':  " --- --- - - -  ",
	'8':  " --- --- --- - -  ",
	'9':  " --- --- --- --- -  ",
	'0':  " --- --- --- --- ---  ",
	'+':  " - --- - --- -  ",
	'-':  " --- - - - - ---  ",
	'?':  " - - --- --- - -  ",
	'/':  " --- - - --- -  ",
	'.':  " - --- - --- - ---  ",
	',':  " --- --- - - --- ---  ",
	'\'': " --- - - --- -  ",
	')':  " --- - --- --- - ---  ",
	'(':  " --- - --- --- -  ",
	':':  " --- --- --- - - -  ",
}

// morseGenerator yields the pixels of the sentence one at a time. Loop
// state (current letter, position within the letter) lives in ordinary
// locals across arbitrarily many yields.
func morseGenerator(parent *coro.Channel, sentence any) {
	for _, letter := range strings.ToUpper(sentence.(string)) {
		pixels, ok := morseTable[letter]
		if !ok {
			pixels = morseTable[' ']
		}

		for i := range pixels {
			parent.YieldTo(pixels[i : i+1])
		}
	}
	// generators implicitly yield nil when they return, as seen by a
	// parent blocked in From
}

func main() {
	// sentence to transmit will be "test" unless another was provided
	sentence := "test"
	if len(os.Args) > 1 {
		sentence = os.Args[1]
	}

	child := coro.New(morseGenerator, sentence)

	for pixel := child.From(); pixel != nil; pixel = child.From() {
		os.Stdout.WriteString(pixel.(string))
	}

	// when the loop exits, the coroutine has returned and its resources
	// have been released

	os.Stdout.WriteString("\n")
}
