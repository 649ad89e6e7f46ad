package eval

import (
	"fmt"

	"github.com/wisplang/wisp/internal/parser"
)

// EvalError is a runtime error: wrong type to a primitive, wrong arity,
// a non-boolean `if` condition, `unquote` outside `quasiquote`,
// application of a non-callable value, or parameter-binding failure.
type EvalError struct {
	Message string
}

func (e EvalError) Error() string {
	return e.Message
}

func evalErrorf(format string, args ...any) error {
	return EvalError{Message: fmt.Sprintf(format, args...)}
}

// wrapParseError tags a ParseError surfaced through EvalSource as an
// EvalError, prefixing its message with "ParseError: " so a syntax
// error caught mid-evaluation still comes back as a single error type.
func wrapParseError(err error) error {
	if _, ok := err.(parser.ParseError); ok {
		return EvalError{Message: "ParseError: " + err.Error()}
	}
	return err
}
