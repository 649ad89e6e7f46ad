package lexer

import (
	"testing"

	"github.com/wisplang/wisp/internal/token"
)

type tokenExpectation struct {
	typ  token.Type
	text string
}

func assertTokens(t *testing.T, name, input string, expected []tokenExpectation) {
	t.Helper()
	l := New()
	l.Init([]byte(input))
	got := l.Tokens()
	if len(got) != len(expected) {
		t.Fatalf("%s: got %d tokens %v, want %d", name, len(got), got, len(expected))
	}
	for i, exp := range expected {
		if got[i].Type != exp.typ || got[i].Text != exp.text {
			t.Errorf("%s: token %d = %q/%s, want %q/%s", name, i, got[i].Text, got[i].Type, exp.text, exp.typ)
		}
	}
}

func TestDelimiters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "empty list",
			input: "()",
			expected: []tokenExpectation{
				{token.LPAREN, "("},
				{token.RPAREN, ")"},
				{token.EOF, ""},
			},
		},
		{
			name:  "quote forms",
			input: "'x `y ,z",
			expected: []tokenExpectation{
				{token.QUOTE, "'"},
				{token.SYMBOL, "x"},
				{token.QUASI, "`"},
				{token.SYMBOL, "y"},
				{token.UNQUOTE, ","},
				{token.SYMBOL, "z"},
				{token.EOF, ""},
			},
		},
		{
			name:  "symbols with whitespace",
			input: "  foo   bar\n\tbaz  ",
			expected: []tokenExpectation{
				{token.SYMBOL, "foo"},
				{token.SYMBOL, "bar"},
				{token.SYMBOL, "baz"},
				{token.EOF, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.name, tt.input, tt.expected)
		})
	}
}

func TestDottedPair(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "standalone dot",
			input: "(a . b)",
			expected: []tokenExpectation{
				{token.LPAREN, "("},
				{token.SYMBOL, "a"},
				{token.DOT, "."},
				{token.SYMBOL, "b"},
				{token.RPAREN, ")"},
				{token.EOF, ""},
			},
		},
		{
			name:  "dot inside symbol is not a dotted-pair token",
			input: "1.5",
			expected: []tokenExpectation{
				{token.SYMBOL, "1.5"},
				{token.EOF, ""},
			},
		},
		{
			name:  "dot inside symbol within a list",
			input: "(foo.bar)",
			expected: []tokenExpectation{
				{token.LPAREN, "("},
				{token.SYMBOL, "foo.bar"},
				{token.RPAREN, ")"},
				{token.EOF, ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.name, tt.input, tt.expected)
		})
	}
}

func TestPositions(t *testing.T) {
	l := New()
	l.Init([]byte("(a\nb)"))
	toks := l.Tokens()
	// (  a  \n  b  )  EOF
	if toks[0].Position.Line != 1 || toks[0].Position.Column != 1 {
		t.Errorf("lparen position = %+v", toks[0].Position)
	}
	// 'b' is on line 2, column 1
	var bTok token.Token
	for _, tok := range toks {
		if tok.Text == "b" {
			bTok = tok
		}
	}
	if bTok.Position.Line != 2 || bTok.Position.Column != 1 {
		t.Errorf("b position = %+v, want line 2 col 1", bTok.Position)
	}
}
