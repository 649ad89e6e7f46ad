package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wisplang/wisp/internal/eval"
)

func TestFormatErrorCLIError(t *testing.T) {
	var buf bytes.Buffer
	err := &CLIError{Type: "usage", Message: "bad flag combination", Hint: "try --help"}
	FormatError(&buf, err, false)

	out := buf.String()
	if !strings.Contains(out, "bad flag combination") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, "try --help") {
		t.Errorf("output %q missing hint", out)
	}
}

func TestFormatErrorEvalError(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, eval.EvalError{Message: "cannot apply a value of type Int"}, false)

	out := buf.String()
	if !strings.Contains(out, "cannot apply a value of type Int") {
		t.Errorf("output %q missing eval error message", out)
	}
}

func TestFormatErrorGeneric(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, errPlain("disk full"), false)

	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("output %q missing generic error message", buf.String())
	}
}

type errPlain string

func (e errPlain) Error() string { return string(e) }

func TestFormatErrorNilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	FormatError(&buf, nil, false)
	if buf.Len() != 0 {
		t.Errorf("expected no output for a nil error, got %q", buf.String())
	}
}
