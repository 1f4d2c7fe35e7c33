/*
Package uesc converts text to and from \uXXXX escapes, respecting the
delimiters comma and semicolon.

Description

Many configuration formats, property files and source code literals carry
non-ASCII text as a sequence of \uXXXX escapes, each of which denotes a
UTF-16 code unit. Lists of such values are often separated by commas or
semicolons. Package uesc converts between the escaped and the readable
form of such lists:

  DecodeAll(`\u3042,\u3044;\u3046`)  =>  "あ,い;う"
  EncodeAll("A,B;😀C")               =>  `\u0041,\u0042;\ud83d\ude00\u0043`

Both directions first split the input into segments with package delim.
Delimiters are never touched. Every text segment in between is handled on
its own:

(1) DecodeAll converts a segment only if it consists solely of escapes
(see package escape). Anything else, including truncated escapes and
unpaired surrogates, is left as it is. Empty and whitespace-only segments
are not inspected at all.

(2) EncodeAll converts every segment, including empty and whitespace-only
ones. Characters outside the Basic Multilingual Plane are written as
surrogate pairs.

Neither function ever fails. Malformed input results in partial conversion,
or in the input being returned unchanged. All functions are free of side
effects and may be called concurrently.

For a pair of linked text buffers, one showing the escaped and one the
readable form, see package mirror.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package uesc

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
