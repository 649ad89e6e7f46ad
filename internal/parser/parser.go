// Package parser turns a flat token stream into top-level wisp values.
// The parser is the only place that distinguishes Int, Bool, and Symbol
// atoms, and the only place that desugars the quote family into
// two-element lists.
package parser

import (
	"strconv"

	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
)

// Tree is the result of a successful parse: the top-level forms in
// source order.
type Tree struct {
	Exprs []object.Value
}

type parser struct {
	tokens []token.Token
	pos    int
	source string
}

// Parse reads tokens to the end of the stream and returns every top-level
// form it contains. source is retained only so a ParseError can render a
// source-line snippet; pass "" if unavailable.
func Parse(tokens []token.Token, source string) (*Tree, error) {
	p := &parser{tokens: tokens, source: source}
	var exprs []object.Value
	for p.current().Type != token.EOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return &Tree{Exprs: exprs}, nil
}

func (p *parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// quoteSugar maps a prefix token type to the special-form symbol it
// desugars to.
var quoteSugar = map[token.Type]string{
	token.QUOTE:   "quote",
	token.QUASI:   "quasiquote",
	token.UNQUOTE: "unquote",
}

func (p *parser) parseExpr() (object.Value, error) {
	tok := p.current()
	switch tok.Type {
	case token.EOF:
		return nil, p.errorf(tok, "unexpected end of input, expected an expression")
	case token.LPAREN:
		return p.parseList()
	case token.RPAREN:
		return nil, p.errorf(tok, "unexpected ')' with no matching '('")
	case token.DOT:
		return nil, p.errorf(tok, "unexpected '.' outside a dotted list")
	case token.QUOTE, token.QUASI, token.UNQUOTE:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return object.NewList(object.Symbol(quoteSugar[tok.Type]), inner), nil
	case token.SYMBOL:
		p.advance()
		return atomFromSymbol(tok.Text), nil
	default:
		return nil, p.errorf(tok, "unexpected token %q", tok.Text)
	}
}

// parseList consumes a '(' already at p.current() through its matching
// ')', producing a proper or dotted-pair list.
func (p *parser) parseList() (object.Value, error) {
	open := p.advance() // consume '('
	var elems []object.Value
	for {
		tok := p.current()
		switch tok.Type {
		case token.EOF:
			return nil, p.errorf(open, "unterminated list starting here")
		case token.RPAREN:
			p.advance()
			return object.NewList(elems...), nil
		case token.DOT:
			if len(elems) == 0 {
				return nil, p.errorf(tok, "unexpected '.' before any list element")
			}
			p.advance()
			tail, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			closeTok := p.current()
			if closeTok.Type != token.RPAREN {
				return nil, p.errorf(closeTok, "expected ')' after dotted-pair tail, got %q", closeTok.Text)
			}
			p.advance()
			return object.NewImproperList(tail, elems...), nil
		default:
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, expr)
		}
	}
}

// atomFromSymbol classifies a raw SYMBOL token's text as Bool, Int, or
// plain Symbol.
func atomFromSymbol(text string) object.Value {
	switch text {
	case "#t":
		return object.Bool(true)
	case "#f":
		return object.Bool(false)
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return object.Int(n)
	}
	return object.Symbol(text)
}
