package uesc_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uesc"
)

func ExampleDecodeAll() {
	fmt.Println(uesc.DecodeAll("\\u3042,\\u3044;\\u3046"))
	// Output: あ,い;う
}

func ExampleEncodeAll() {
	fmt.Println(uesc.EncodeAll("A,B;😀C"))
	// Output: \u0041,\u0042;\ud83d\ude00\u0043
}

func TestDecodeAll(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var tests = []struct {
		input  string
		output string
	}{
		{"", ""},
		{"\\u3042,\\u3044;\\u3046", "あ,い;う"},
		{"\\ud83d\\ude00", "😀"},
		{"\\u304", "\\u304"},
		{"\\ud83d", "\\ud83d"},
		{"\\ud83dX", "\\ud83dX"},
		{"\\ude00", "\\ude00"},
		{",;", ",;"},
		{" ,\t;", " ,\t;"},
		{"\\u0041 ,\\u0042", "\\u0041 ,B"},
		{"\\u0041,broken\\u00,\\u0043", "A,broken\\u00,C"},
		{"plain text; nothing, to do", "plain text; nothing, to do"},
		{"\\u002c", ","},
		{"\\uD83D\\uDE00;\\u00E9", "😀;é"},
	}
	for i, test := range tests {
		out := uesc.DecodeAll(test.input)
		if out != test.output {
			t.Errorf("test #%d: expected DecodeAll(%q) = %q, is %q", i, test.input, test.output, out)
		}
	}
}

func TestEncodeAll(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var tests = []struct {
		input  string
		output string
	}{
		{"", ""},
		{"😀", "\\ud83d\\ude00"},
		{"A,B;😀C", "\\u0041,\\u0042;\\ud83d\\ude00\\u0043"},
		{"あ,い;う", "\\u3042,\\u3044;\\u3046"},
		{",,", ",,"},
		{" ; ", "\\u0020;\\u0020"},
		{"\\", "\\u005c"},
	}
	for i, test := range tests {
		out := uesc.EncodeAll(test.input)
		if out != test.output {
			t.Errorf("test #%d: expected EncodeAll(%q) = %q, is %q", i, test.input, test.output, out)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []string{
		"Hello World", "世界", "🇩🇪!", "x̀ 𝄞", "tab\tand newline\n", "\\u3042",
	}
	rnd := rand.New(rand.NewSource(4711))
	for i := 0; i < 200; i++ {
		inputs = append(inputs, randomText(rnd, 12, textAlphabet))
	}
	for _, input := range inputs {
		if out := uesc.DecodeAll(uesc.EncodeAll(input)); out != input {
			t.Errorf("round trip of %q yields %q", input, out)
		}
	}
}

func TestPlainTextUnchanged(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(815))
	for i := 0; i < 200; i++ {
		input := randomText(rnd, 16, plainAlphabet)
		if out := uesc.DecodeAll(input); out != input {
			t.Errorf("plain text %q changed to %q", input, out)
		}
	}
}

func TestDelimiterPreservation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		input := randomText(rnd, 16, plainAlphabet)
		encoded := uesc.EncodeAll(input)
		if delimitersOf(encoded) != delimitersOf(input) {
			t.Errorf("EncodeAll(%q) changed delimiters: %q", input, encoded)
		}
		// encoded text never contains an escaped delimiter
		if decoded := uesc.DecodeAll(encoded); delimitersOf(decoded) != delimitersOf(input) {
			t.Errorf("DecodeAll(%q) changed delimiters: %q", encoded, decoded)
		}
	}
}

// --- Helpers ----------------------------------------------------------

var (
	// text without delimiters, including characters of the escape grammar
	textAlphabet = []rune{'a', 'Z', '0', ' ', '\t', 'é', 'あ', '世', '😀', '𝄞', '\\', 'u'}
	// text with delimiters, but never a complete escape
	plainAlphabet = []rune{'a', 'Z', '0', ' ', '\t', 'é', 'あ', '😀', '\\', ',', ';'}
)

// randomText creates a random string of at most maxLen runes.
func randomText(rnd *rand.Rand, maxLen int, alphabet []rune) string {
	n := rnd.Intn(maxLen + 1)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(alphabet[rnd.Intn(len(alphabet))])
	}
	return sb.String()
}

func delimitersOf(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ',' || r == ';' {
			return r
		}
		return -1
	}, s)
}
