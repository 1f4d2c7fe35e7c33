package uesc

import (
	"strings"

	"github.com/npillmayer/uesc/delim"
	"github.com/npillmayer/uesc/escape"
)

// DecodeAll decodes every escape run in input which is delimited by
// commas, semicolons, or the start or end of input. Segments which are not
// a complete escape run are copied unchanged, as are delimiters.
func DecodeAll(input string) string {
	var sb strings.Builder
	sb.Grow(len(input))
	for _, seg := range delim.Tokenize(input) {
		sb.WriteString(decodeSegment(seg))
	}
	return sb.String()
}

func decodeSegment(seg delim.Segment) string {
	if seg.IsDelimiter() || strings.TrimSpace(seg.Text) == "" {
		return seg.Text
	}
	res := escape.DecodeRun(seg.Text)
	if !res.Decoded() {
		CT().P("segment", seg.Text).Debugf("not decodable: %v", res.Cause())
		return seg.Text
	}
	return res.String()
}

// EncodeAll encodes all text between delimiters as \uXXXX escapes.
// Delimiters are copied unchanged.
func EncodeAll(input string) string {
	seq := delim.Tokenize(input)
	buf := make([]byte, 0, 6*len(input))
	for _, seg := range seq {
		if seg.IsDelimiter() {
			buf = append(buf, seg.Text...)
			continue
		}
		buf = escape.AppendEncoded(buf, seg.Text)
	}
	CT().Debugf("encoded %d segments", len(seq))
	return string(buf)
}
