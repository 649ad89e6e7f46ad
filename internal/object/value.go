// Package object implements wisp's runtime value representation and the
// lexically-scoped Environment that closures capture. Value and
// Environment are mutually referential (a Closure carries a captured
// Environment, and an Environment's frames hold Values), so both live
// in this one package.
package object

import "fmt"

// Value is the tagged union of every runtime value. All concrete variants
// are immutable once constructed.
type Value interface {
	value()
}

// Void is the result of effectful forms (define, defmacro, display).
type Void struct{}

func (Void) value() {}

// Int is the interpreter's only numeric type: a signed 64-bit integer.
type Int int64

func (Int) value() {}

// Bool is a boolean, printed #t / #f.
type Bool bool

func (Bool) value() {}

// Symbol is an identifier: a name bound in an environment, or an AST leaf.
type Symbol string

func (Symbol) value() {}

// Null is the unique empty-list / end-of-list marker.
type Null struct{}

func (Null) value() {}

// Pair is a cons cell: two shared references forming lists and trees.
// Pair's Cdr may be any Value (improper lists are legal).
type Pair struct {
	Car Value
	Cdr Value
}

func (*Pair) value() {}

// NewList builds a proper list from vs, terminated by Null.
func NewList(vs ...Value) Value {
	var tail Value = Null{}
	for i := len(vs) - 1; i >= 0; i-- {
		tail = &Pair{Car: vs[i], Cdr: tail}
	}
	return tail
}

// NewImproperList builds a Pair chain over vs terminated by tail instead
// of Null (the dotted-pair form).
func NewImproperList(tail Value, vs ...Value) Value {
	for i := len(vs) - 1; i >= 0; i-- {
		tail = &Pair{Car: vs[i], Cdr: tail}
	}
	return tail
}

// ListToSlice converts a proper list into a Go slice. It returns false if
// v is not a proper list (i.e. its spine does not terminate in Null).
func ListToSlice(v Value) ([]Value, bool) {
	var out []Value
	for {
		switch t := v.(type) {
		case Null:
			return out, true
		case *Pair:
			out = append(out, t.Car)
			v = t.Cdr
		default:
			return out, false
		}
	}
}

// BuiltinFunc is the Go implementation behind a BuiltinFn primitive.
type BuiltinFunc func(args []Value) (Value, error)

// BuiltinFn is a primitive tag; Fn is never nil for a constructed
// BuiltinFn.
type BuiltinFn struct {
	Name string
	Fn   BuiltinFunc
}

func (*BuiltinFn) value() {}

// Closure is a first-class procedure or, when Macro is true, a macro.
// Params is itself a Value: Null, a proper list of Symbols, an improper
// list with a Symbol tail, or a bare Symbol (the four parameter-spec
// shapes).
type Closure struct {
	Params Value
	Body   []Value
	Env    *Environment
	Macro  bool
}

func (*Closure) value() {}

// Equal reports structural equality across the full Value type (eq?).
// Closures and BuiltinFns compare by identity: two distinct procedures
// are never eq? even with identical source.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Void:
		_, ok := b.(Void)
		return ok
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Null:
		_, ok := b.(Null)
		return ok
	case *Pair:
		bv, ok := b.(*Pair)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		return Equal(av.Car, bv.Car) && Equal(av.Cdr, bv.Cdr)
	case *BuiltinFn:
		bv, ok := b.(*BuiltinFn)
		return ok && av == bv
	case *Closure:
		bv, ok := b.(*Closure)
		return ok && av == bv
	default:
		return false
	}
}

// TypeName returns a short, stable name for a Value's variant, used in
// error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Void:
		return "void"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Symbol:
		return "symbol"
	case Null:
		return "null"
	case *Pair:
		return "pair"
	case *BuiltinFn:
		return "builtin"
	case *Closure:
		return "procedure"
	default:
		return fmt.Sprintf("%T", v)
	}
}
