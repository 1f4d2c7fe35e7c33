/*
Package escape converts between text and runs of \uXXXX escapes.

Escapes

An escape consists of a backslash, the letter 'u' and exactly four
hexadecimal digits. Each escape denotes one UTF-16 code unit. Code points
outside the Basic Multilingual Plane are written as two escapes, a high
surrogate (U+D800…U+DBFF) followed by a low surrogate (U+DC00…U+DFFF):

  U+1F600 GRINNING FACE   <=>   \ud83d\ude00

Decoding

DecodeRun interprets a segment of text as an escape run, i.e. one or more
escapes with nothing else before, between or after them. Decoding is a
total function: segments which are not a well-formed run, or which contain
unpaired surrogates, result in a Result with Decoded() == false. It is up
to the client to decide what to do with such segments; package uesc will
leave them untouched.

Recognition of escape runs is done by a small finite state automaton. Every
state is a function which matches a single rune class and returns the
function for the next rune, in the same manner as the UAX recognizers of
package uax. Automata are pooled.

Encoding

Encode never fails. Every code point of its input is written as one or two
escapes with lowercase hex digits. Input is read as UTF-8; invalid bytes
are treated as U+FFFD.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package escape

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Surrogate ranges, see package unicode/utf16.
const (
	surrHighStart = 0xd800 // first high surrogate
	surrLowStart  = 0xdc00 // first low surrogate, one after last high surrogate
	surrLowEnd    = 0xe000 // one after last low surrogate
	surrSelf      = 0x10000
)
