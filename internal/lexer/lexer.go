// Package lexer splits wisp source text into a flat token stream. The
// lexer never fails; malformed input is caught by the parser.
package lexer

import (
	"io"
	"log/slog"
	"os"

	"github.com/wisplang/wisp/internal/token"
)

// ASCII classification table for whitespace, looked up by byte value.
var isWhitespace [128]bool

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
	}
}

// Lexer tokenizes a fixed input buffer. Construct with New, feed source
// with Init, then call Tokens.
type Lexer struct {
	input  string
	pos    int // current byte offset
	line   int
	column int
	logger *slog.Logger
}

// New creates a Lexer with debug logging gated by the WISP_DEBUG
// environment variable.
func New() *Lexer {
	level := slog.LevelInfo
	if os.Getenv("WISP_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	return &Lexer{line: 1, column: 1, logger: logger}
}

// Init resets the lexer to tokenize src from the beginning.
func (l *Lexer) Init(src []byte) {
	l.input = string(src)
	l.pos = 0
	l.line = 1
	l.column = 1
}

// FromReader reads r fully and initializes the lexer with its contents.
func (l *Lexer) FromReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	l.Init(data)
	return nil
}

// Tokens scans the entire input and returns the flat token stream,
// terminated by a single EOF token.
func (l *Lexer) Tokens() []token.Token {
	var tokens []token.Token
	for {
		tok := l.next()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) next() token.Token {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return l.make(token.EOF, "")
	}

	ch := l.input[l.pos]
	if t, ok := token.SingleCharType(ch); ok {
		tok := l.make(t, string(ch))
		l.advance(1)
		return tok
	}

	if ch == '.' && l.dotStandsAlone() {
		tok := l.make(token.DOT, ".")
		l.advance(1)
		return tok
	}

	return l.readSymbol()
}

// dotStandsAlone reports whether the '.' at the current position is
// surrounded by delimiters or whitespace: a standalone token, not part
// of a longer symbol run.
func (l *Lexer) dotStandsAlone() bool {
	if l.pos > 0 {
		prev := l.input[l.pos-1]
		if prev >= 128 || !isWhitespace[prev] {
			if _, ok := token.SingleCharType(prev); !ok {
				return false
			}
		}
	}
	next := l.pos + 1
	if next >= len(l.input) {
		return true
	}
	c := l.input[next]
	if c < 128 && isWhitespace[c] {
		return true
	}
	if _, ok := token.SingleCharType(c); ok {
		return true
	}
	return false
}

func (l *Lexer) readSymbol() token.Token {
	start := l.pos
	startLine, startCol := l.line, l.column
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c < 128 && isWhitespace[c] {
			break
		}
		if _, ok := token.SingleCharType(c); ok {
			break
		}
		if c == '.' && l.dotStandsAlone() {
			break
		}
		l.advance(1)
	}
	text := l.input[start:l.pos]
	l.logger.Debug("symbol", "text", text, "line", startLine, "col", startCol)
	return token.Token{
		Type: token.SYMBOL,
		Text: text,
		Position: token.Position{
			Line:   startLine,
			Column: startCol,
			Offset: start,
		},
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c >= 128 || !isWhitespace[c] {
			return
		}
		l.advance(1)
	}
}

func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}
}

func (l *Lexer) make(t token.Type, text string) token.Token {
	return token.Token{
		Type: t,
		Text: text,
		Position: token.Position{
			Line:   l.line,
			Column: l.column,
			Offset: l.pos,
		},
	}
}
