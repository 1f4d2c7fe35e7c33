// uesc - convert text to and from \uXXXX escapes
//
// Usage:
//
//	uesc [-trace level] decode [file]   Decode escape runs between delimiters
//	uesc [-trace level] encode [file]   Encode text between delimiters
//	uesc [-trace level] mirror          Line-oriented session with two linked buffers
//
// Commas and semicolons are delimiters and are always copied unchanged.
// If no file is given, or file is "-", input is read from stdin.
//
// In a mirror session every input line is one of
//
//	< text     edit the escaped buffer
//	> text     edit the plain buffer
//	copy <     copy the escaped buffer to stdout
//	copy >     copy the plain buffer to stdout
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uesc"
	"github.com/npillmayer/uesc/mirror"
)

func main() {
	traceLevel := flag.String("trace", "error", "trace level (error, info, debug)")
	flag.Usage = printUsage
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	level, err := parseTraceLevel(*traceLevel)
	if err != nil {
		fatal("%v", err)
	}
	gtrace.CoreTracer.SetTraceLevel(level)

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}
	switch cmd := flag.Arg(0); cmd {
	case "decode", "encode":
		input, err := readInput(flag.Arg(1))
		if err != nil {
			fatal("%s: %v", cmd, err)
		}
		if cmd == "decode" {
			fmt.Print(uesc.DecodeAll(input))
		} else {
			fmt.Print(uesc.EncodeAll(input))
		}
	case "mirror":
		if err := runMirror(os.Stdin, os.Stdout); err != nil {
			fatal("mirror: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "uesc: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: uesc [-trace level] decode|encode [file]")
	fmt.Fprintln(os.Stderr, "       uesc [-trace level] mirror")
	flag.PrintDefaults()
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "uesc: "+format+"\n", args...)
	os.Exit(1)
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

// readInput reads all of a file, or stdin for "" and "-". The whole input
// is converted in one go.
func readInput(name string) (string, error) {
	var r io.Reader = os.Stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// --- Mirror session ---------------------------------------------------

// writerClipboard copies to an io.Writer, one line per copy action.
type writerClipboard struct {
	w io.Writer
}

func (cb writerClipboard) WriteText(s string) error {
	_, err := fmt.Fprintln(cb.w, s)
	return err
}

func sideFor(marker string) (mirror.Side, bool) {
	switch marker {
	case "<":
		return mirror.Escaped, true
	case ">":
		return mirror.Plain, true
	}
	return 0, false
}

func markerFor(side mirror.Side) string {
	if side == mirror.Escaped {
		return "<"
	}
	return ">"
}

// runMirror reads edit and copy commands line by line. Every update is
// printed and then handed back to the pair, the way a view would report
// its change event; the pair drops it as an echo.
func runMirror(in io.Reader, out io.Writer) error {
	pair := mirror.NewPair()
	clip := writerClipboard{w: out}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "copy ") {
			side, ok := sideFor(strings.TrimSpace(line[5:]))
			if !ok {
				fmt.Fprintf(os.Stderr, "uesc: cannot copy from %q\n", line[5:])
				continue
			}
			if err := pair.Copy(side, clip); err != nil {
				return err
			}
			continue
		}
		if len(line) < 1 {
			continue
		}
		side, ok := sideFor(line[:1])
		if !ok {
			fmt.Fprintf(os.Stderr, "uesc: lines have to start with '<' or '>': %q\n", line)
			continue
		}
		text := strings.TrimPrefix(line[1:], " ")
		u, ok := pair.Edit(side, text)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(out, "%s %s\n", markerFor(u.Target), u.Text); err != nil {
			return err
		}
		pair.Edit(u.Target, u.Text) // echo from the target view
	}
	return sc.Err()
}
