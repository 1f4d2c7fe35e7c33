package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMirrorSession(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := strings.Join([]string{
		"< \\u3042,\\u3044",
		"> A;😀",
		"copy <",
		"copy >",
	}, "\n")
	var out bytes.Buffer
	if err := runMirror(strings.NewReader(input), &out); err != nil {
		t.Fatal(err)
	}
	expected := strings.Join([]string{
		"> あ,い",
		"< \\u0041;\\ud83d\\ude00",
		"\\u0041;\\ud83d\\ude00",
		"A;😀",
		"",
	}, "\n")
	if out.String() != expected {
		t.Errorf("unexpected session output:\n%s\nexpected:\n%s", out.String(), expected)
	}
}

func TestParseTraceLevel(t *testing.T) {
	if l, err := parseTraceLevel("DEBUG"); err != nil || l != tracing.LevelDebug {
		t.Errorf("expected debug level, have %v (%v)", l, err)
	}
	if _, err := parseTraceLevel("verbose"); err == nil {
		t.Errorf("expected error for unknown trace level")
	}
}
