/*
Package delim splits text at the reserved delimiters comma and semicolon.

Typical Usage

Tokenize returns the complete token sequence of a string:

  for _, seg := range delim.Tokenize("あ,い;x") {
      // seg.Kind is TextSegment or DelimiterSegment
  }

Segments alternate between text and delimiters. Every delimiter character
is a segment of its own; leading, trailing or consecutive delimiters
produce empty text segments between them. Concatenating all segments in
order reproduces the input exactly, byte for byte.

Clients wanting to drive a parser may use Scanner instead, which
implements the tokenizer interface of package gorgo/lr/scanner.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package delim

import (
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// The two reserved delimiters.
const (
	Comma     = ','
	Semicolon = ';'
)

const delimiters = ",;"

// IsDelimiter returns true if r is one of the reserved delimiters.
func IsDelimiter(r rune) bool {
	return r == Comma || r == Semicolon
}

// Kind tags a segment as either text or delimiter.
type Kind int8

// Segment kinds
const (
	TextSegment      Kind = iota // zero or more non-delimiter characters
	DelimiterSegment             // exactly one delimiter character
)

func (k Kind) String() string {
	switch k {
	case TextSegment:
		return "Text"
	case DelimiterSegment:
		return "Delimiter"
	}
	return "?"
}

// Segment is a substring of the input, either a single delimiter or the
// text between two delimiters.
type Segment struct {
	Kind Kind
	Text string
}

// IsDelimiter is a shortcut for seg.Kind == DelimiterSegment.
func (seg Segment) IsDelimiter() bool {
	return seg.Kind == DelimiterSegment
}

// Sequence is an ordered list of segments. A sequence produced by Tokenize
// always starts and ends with a text segment.
type Sequence []Segment

// String concatenates all segments, i.e. re-creates the tokenized input.
func (seq Sequence) String() string {
	var sb strings.Builder
	for _, seg := range seq {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Tokenize splits input at every delimiter. It never fails; the empty
// string results in a sequence holding one empty text segment.
func Tokenize(input string) Sequence {
	sc := NewScanner(input)
	seq := make(Sequence, 0, 2*strings.Count(input, ",")+2*strings.Count(input, ";")+1)
	for {
		tokval, token, _, _ := sc.NextToken(nil)
		switch tokval {
		case TextToken:
			seq = append(seq, Segment{Kind: TextSegment, Text: token.(string)})
		case Comma, Semicolon:
			seq = append(seq, Segment{Kind: DelimiterSegment, Text: token.(string)})
		default: // EOF
			CT().Debugf("tokenized %d bytes into %d segments", len(input), len(seq))
			return seq
		}
	}
}
