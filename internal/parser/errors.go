package parser

import (
	"fmt"
	"strings"

	"github.com/wisplang/wisp/internal/token"
)

// ParseError is a syntax error with enough context to render a
// Rust/Clang-style code snippet pointing at the offending token.
type ParseError struct {
	Message string
	Token   token.Token
	Source  string
}

func (e ParseError) Error() string {
	snippet := e.createCodeSnippet()
	if snippet == "" {
		return e.Message
	}
	return fmt.Sprintf("%s\n%s", e.Message, snippet)
}

func (e ParseError) createCodeSnippet() string {
	if e.Source == "" || e.Token.Position.Line == 0 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if e.Token.Position.Line > len(lines) {
		return ""
	}
	lineContent := lines[e.Token.Position.Line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "  --> %d:%d\n", e.Token.Position.Line, e.Token.Position.Column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", e.Token.Position.Line, lineContent)
	b.WriteString("   | ")
	if col := e.Token.Position.Column; col > 0 && col <= len(lineContent)+1 {
		b.WriteString(strings.Repeat(" ", col-1) + "^")
	}
	return b.String()
}

func (p *parser) errorf(tok token.Token, format string, args ...any) error {
	return ParseError{
		Message: fmt.Sprintf(format, args...),
		Token:   tok,
		Source:  p.source,
	}
}
