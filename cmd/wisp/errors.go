package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/wisplang/wisp/internal/eval"
)

// CLIError is a formatted, user-facing command-line error: a one-line
// message plus optional additional context and a suggested fix.
type CLIError struct {
	Type    string // "usage", "io", "eval"
	Message string
	Details string
	Hint    string
}

func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// FormatError writes err to w, dispatching on its concrete type so an
// EvalError (which already carries a rendered parse-error snippet) isn't
// re-wrapped, and a CLIError gets its Details/Hint on their own lines.
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}
	switch e := err.(type) {
	case eval.EvalError:
		formatEvalError(w, e, useColor)
	case *CLIError:
		formatCLIError(w, e, useColor)
	default:
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", colorRed, useColor), err.Error())
	}
}

func formatEvalError(w io.Writer, err eval.EvalError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", colorRed, useColor), err.Error())
}

func formatCLIError(w io.Writer, err *CLIError, useColor bool) {
	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", colorRed, useColor), err.Message)
	if err.Details != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", err.Details)
	}
	if err.Hint != "" {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", colorYellow, useColor), err.Hint)
	}
}
