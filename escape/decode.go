package escape

import (
	"errors"
	"strings"
)

// Causes for a segment not being decodable.
var (
	ErrMalformedRun = errors.New("escape: segment is not a run of \\uXXXX escapes")
	ErrUnpairedHigh = errors.New("escape: high surrogate not followed by low surrogate")
	ErrUnpairedLow  = errors.New("escape: low surrogate without preceding high surrogate")
)

// Result is the outcome of decoding an escape run. It either holds the
// decoded code points or the cause why the run could not be decoded.
// The zero value is not decodable.
type Result struct {
	codePoints []rune
	cause      error
}

// notDecodable creates a Result signalling failure.
func notDecodable(cause error) Result {
	return Result{cause: cause}
}

// Decoded returns true if the run has successfully been decoded.
func (res Result) Decoded() bool {
	return res.cause == nil && res.codePoints != nil
}

// CodePoints returns the decoded code points, or nil if the run has not
// been decodable.
func (res Result) CodePoints() []rune {
	if !res.Decoded() {
		return nil
	}
	return res.codePoints
}

// Cause returns the reason for a failed decoding attempt, or nil.
// The zero Result has cause ErrMalformedRun.
func (res Result) Cause() error {
	if res.cause == nil && res.codePoints == nil {
		return ErrMalformedRun
	}
	return res.cause
}

// String returns the decoded text, or the empty string if the run has not
// been decodable.
func (res Result) String() string {
	if !res.Decoded() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(res.codePoints) * 3)
	for _, r := range res.codePoints {
		sb.WriteRune(r)
	}
	return sb.String()
}

// DecodeRun decodes a segment consisting of one or more escapes.
//
// The segment has to match (\u HEX{4})+ completely, otherwise the result
// will have cause ErrMalformedRun. Surrogate pairs are combined into a
// single code point. A high surrogate which is not immediately followed by
// a low surrogate, and a low surrogate on its own, make the whole run
// undecodable.
//
// DecodeRun is safe for concurrent use.
func DecodeRun(segment string) Result {
	if len(segment) < 6 {
		return notDecodable(ErrMalformedRun)
	}
	a := newPooledAutomaton()
	defer a.release()
	units, ok := a.scan(segment)
	if !ok {
		return notDecodable(ErrMalformedRun)
	}
	return combineSurrogates(units)
}

// combineSurrogates walks the code units from left to right, combining
// high and low surrogates into supplementary code points.
func combineSurrogates(units []uint16) Result {
	codePoints := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		cu := rune(units[i])
		switch {
		case surrHighStart <= cu && cu < surrLowStart:
			if i+1 >= len(units) {
				CT().Debugf("high surrogate %04x at end of run", cu)
				return notDecodable(ErrUnpairedHigh)
			}
			next := rune(units[i+1])
			if next < surrLowStart || next >= surrLowEnd {
				CT().Debugf("high surrogate %04x followed by %04x", cu, next)
				return notDecodable(ErrUnpairedHigh)
			}
			codePoints = append(codePoints, (cu-surrHighStart)<<10+(next-surrLowStart)+surrSelf)
			i++
		case surrLowStart <= cu && cu < surrLowEnd:
			CT().Debugf("unpaired low surrogate %04x", cu)
			return notDecodable(ErrUnpairedLow)
		default:
			codePoints = append(codePoints, cu)
		}
	}
	return Result{codePoints: codePoints}
}
