package escape

import "unicode/utf8"

var hexDigit = []byte("0123456789abcdef")

// Encode writes every code point of segment as \uXXXX escapes.
// Supplementary code points are written as a surrogate pair. The length
// of the result is always a multiple of 6.
func Encode(segment string) string {
	if segment == "" {
		return ""
	}
	return string(AppendEncoded(make([]byte, 0, 6*utf8.RuneCountInString(segment)), segment))
}

// AppendEncoded appends the escaped form of segment to dst and returns the
// extended buffer.
func AppendEncoded(dst []byte, segment string) []byte {
	for _, r := range segment { // by code point, not by code unit
		if r >= surrSelf {
			base := r - surrSelf
			dst = appendUnit(dst, surrHighStart+(base>>10))
			dst = appendUnit(dst, surrLowStart+(base&0x3ff))
			continue
		}
		dst = appendUnit(dst, r)
	}
	return dst
}

func appendUnit(dst []byte, cu rune) []byte {
	return append(dst, '\\', 'u',
		hexDigit[cu>>12&0xf], hexDigit[cu>>8&0xf], hexDigit[cu>>4&0xf], hexDigit[cu&0xf])
}
