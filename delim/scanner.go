package delim

import (
	"strings"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// TextToken is the token value for text between delimiters. Delimiters are
// reported with their own character as token value, similar to
// text/scanner.
const TextToken = 1

// Scanner implements the scanner.Tokenizer interface.
// It reads runs of non-delimiter text as a unit and reports every delimiter
// character as a separate token.
type Scanner struct {
	input     string
	pos       int  // byte position of the next token
	inText    bool // expecting a text token next?
	done      bool // final text token has been sent
	errHandle func(error)
}

// NewScanner creates a scanner for an input string.
func NewScanner(input string) *Scanner {
	return &Scanner{
		input:  input,
		inText: true,
	}
}

// NextToken returns the next segment of the input.
//
// The token's value is TextToken for text (which may be empty), or the
// delimiter character for delimiters. The token itself is the segment's
// string. Positions and lengths are byte offsets into the input.
// After the final text segment NextToken returns scanner.EOF.
//
// expected is ignored: the delimiter grammar has no ambiguity.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if sc.done {
		return scanner.EOF, "", uint64(sc.pos), 0
	}
	start := sc.pos
	if sc.inText {
		end := len(sc.input)
		if i := strings.IndexAny(sc.input[start:], delimiters); i >= 0 {
			end = start + i
			sc.inText = false
		} else {
			sc.done = true
		}
		sc.pos = end
		lexeme := sc.input[start:end]
		CT().Debugf("scanned text %q at %d", lexeme, start)
		return TextToken, lexeme, uint64(start), uint64(end - start)
	}
	// a delimiter is waiting at pos; both are single-byte
	sc.pos++
	sc.inText = true
	d := sc.input[start]
	return int(d), sc.input[start:sc.pos], uint64(start), 1
}

// SetErrorHandler sets an error handler function. The delimiter grammar
// accepts every input, therefore the handler will never be called.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.errHandle = h
}
