package object

import (
	"strconv"
	"strings"
)

// Print renders v in external representation. quoteOuter controls
// whether a top-level list or Null is prefixed with "'": the REPL
// prints its result with quoteOuter set, while display and nested list
// elements never re-quote.
func Print(v Value, quoteOuter bool) string {
	switch v.(type) {
	case Null, *Pair:
		if quoteOuter {
			return "'" + printElement(v)
		}
		return printElement(v)
	default:
		return printElement(v)
	}
}

// printElement renders any single Value, recursing into printList for
// lists and dotted pairs.
func printElement(v Value) string {
	switch t := v.(type) {
	case Void:
		return ""
	case Int:
		return strconv.FormatInt(int64(t), 10)
	case Bool:
		if t {
			return "#t"
		}
		return "#f"
	case Symbol:
		return string(t)
	case *BuiltinFn:
		return "#<builtin:" + t.Name + ">"
	case *Closure:
		if t.Macro {
			return "#macro"
		}
		return "#procedure"
	case Null:
		return "()"
	case *Pair:
		return printList(t)
	default:
		return "#<unknown>"
	}
}

// printList renders the parenthesized form of a list or dotted pair,
// never quoting: (a b c) or (a b . c).
func printList(p *Pair) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(printElement(p.Car))
	rest := p.Cdr
	for {
		switch t := rest.(type) {
		case Null:
			b.WriteByte(')')
			return b.String()
		case *Pair:
			b.WriteByte(' ')
			b.WriteString(printElement(t.Car))
			rest = t.Cdr
		default:
			b.WriteString(" . ")
			b.WriteString(printElement(t))
			b.WriteByte(')')
			return b.String()
		}
	}
}
