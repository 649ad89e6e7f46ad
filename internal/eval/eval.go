// Package eval implements wisp's evaluator: a trampoline over a single
// (expression, environment) pair that rewrites itself in tail position
// rather than recursing, special forms (define, defmacro, lambda, if,
// quote, quasiquote/unquote), application of closures and primitives,
// and the eval-source entry point that composes lex, parse, and
// evaluate.
package eval

import (
	"github.com/wisplang/wisp/internal/invariant"
	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/parser"
)

// specialForms are the head symbols that are never looked up as
// bindings: a match here beats any environment binding of that name.
var specialForms = map[string]bool{
	"define":     true,
	"defmacro":   true,
	"lambda":     true,
	"if":         true,
	"quote":      true,
	"quasiquote": true,
	"unquote":    true,
}

// SpecialForms exposes the special-form name set for tooling outside
// the evaluator (internal/lint's typo checker must not flag them as
// unbound symbols).
func SpecialForms() map[string]bool {
	out := make(map[string]bool, len(specialForms))
	for k, v := range specialForms {
		out[k] = v
	}
	return out
}

// Eval evaluates expr in env, following tail calls via an internal
// trampoline rather than Go recursion, so a self-tail-recursive wisp
// procedure runs in O(1) Go stack regardless of iteration count.
func Eval(expr object.Value, env *object.Environment) (object.Value, error) {
	for {
		switch v := expr.(type) {
		case object.Int, object.Bool, object.Void:
			return v, nil
		case object.Null:
			return v, nil
		case object.Symbol:
			if v == "null" {
				return object.Null{}, nil
			}
			if val, ok := env.Lookup(string(v)); ok {
				return val, nil
			}
			// Tolerant lookup: an unbound symbol evaluates to Void, not
			// an error.
			return object.Void{}, nil
		case *object.Pair:
			next, nextEnv, result, done, err := evalPair(v, env)
			if err != nil {
				return nil, err
			}
			if done {
				return result, nil
			}
			expr, env = next, nextEnv
			continue
		default:
			return nil, evalErrorf("cannot evaluate value of type %s", object.TypeName(expr))
		}
	}
}

// evalPair evaluates one Pair-headed form. It either returns a final
// result (done=true) or a rewritten (expr, env) pair for the trampoline
// to continue with (done=false).
func evalPair(p *object.Pair, env *object.Environment) (object.Value, *object.Environment, object.Value, bool, error) {
	elems, proper := object.ListToSlice(p)
	if !proper {
		return nil, nil, nil, false, evalErrorf("cannot evaluate an improper list as a form")
	}
	if len(elems) == 0 {
		return nil, nil, nil, false, evalErrorf("cannot evaluate an empty form")
	}

	if head, ok := elems[0].(object.Symbol); ok && specialForms[string(head)] {
		return evalSpecialForm(string(head), elems[1:], env)
	}

	fn, err := Eval(elems[0], env)
	if err != nil {
		return nil, nil, nil, false, err
	}
	return applyTail(fn, elems[1:], env)
}

func evalSpecialForm(head string, args []object.Value, env *object.Environment) (object.Value, *object.Environment, object.Value, bool, error) {
	switch head {
	case "quote":
		if len(args) != 1 {
			return nil, nil, nil, false, evalErrorf("quote expects exactly 1 argument, got %d", len(args))
		}
		return nil, nil, args[0], true, nil

	case "quasiquote":
		if len(args) != 1 {
			return nil, nil, nil, false, evalErrorf("quasiquote expects exactly 1 argument, got %d", len(args))
		}
		result, err := quasiquote(args[0], env)
		if err != nil {
			return nil, nil, nil, false, err
		}
		return nil, nil, result, true, nil

	case "unquote":
		return nil, nil, nil, false, evalErrorf("unquote outside quasiquote")

	case "if":
		if len(args) != 3 {
			return nil, nil, nil, false, evalErrorf("if expects exactly 3 arguments (cond then else), got %d", len(args))
		}
		cond, err := Eval(args[0], env)
		if err != nil {
			return nil, nil, nil, false, err
		}
		b, ok := cond.(object.Bool)
		if !ok {
			return nil, nil, nil, false, evalErrorf("if condition must be a Bool, got %s", object.TypeName(cond))
		}
		if bool(b) {
			return args[1], env, nil, false, nil
		}
		return args[2], env, nil, false, nil

	case "lambda":
		if len(args) < 2 {
			return nil, nil, nil, false, evalErrorf("lambda expects parameters and at least one body form")
		}
		closure := &object.Closure{Params: args[0], Body: args[1:], Env: env}
		return nil, nil, closure, true, nil

	case "define":
		return nil, nil, nil, false, evalDefine(args, env, false)

	case "defmacro":
		return nil, nil, nil, false, evalDefine(args, env, true)

	default:
		invariant.Invariant(false, "unreachable special form %q", head)
		return nil, nil, nil, false, nil
	}
}

// evalDefine implements both `define` and `defmacro`: `(define NAME
// EXPR)` binds a value; `(define (NAME . PARAMS) BODY...)` binds a
// closure built from the given parameter spec and body. `defmacro`
// only ever uses the second (closure) form, with the macro flag set.
func evalDefine(args []object.Value, env *object.Environment, isMacro bool) error {
	if len(args) < 1 {
		return evalErrorf("define expects a name (or name+params) and, for a value define, an expression")
	}

	switch target := args[0].(type) {
	case object.Symbol:
		if isMacro {
			return evalErrorf("defmacro requires a (name . params) form, got a bare symbol")
		}
		if len(args) != 2 {
			return evalErrorf("(define NAME EXPR) expects exactly 2 arguments, got %d", len(args))
		}
		val, err := Eval(args[1], env)
		if err != nil {
			return err
		}
		env.Define(string(target), val)
		return nil

	case *object.Pair:
		nameSym, ok := target.Car.(object.Symbol)
		if !ok {
			return evalErrorf("define's target head must be a symbol naming the procedure")
		}
		if len(args) < 2 {
			return evalErrorf("define of a procedure requires at least one body form")
		}
		closure := &object.Closure{
			Params: target.Cdr,
			Body:   args[1:],
			Env:    env,
			Macro:  isMacro,
		}
		env.Define(string(nameSym), closure)
		return nil

	default:
		return evalErrorf("define's first argument must be a symbol or a (name . params) list")
	}
}

// applyTail applies fn to the unevaluated argument expressions argExprs,
// rewriting the trampoline state rather than recursing when fn is a
// procedure or macro body in tail position.
func applyTail(fn object.Value, argExprs []object.Value, env *object.Environment) (object.Value, *object.Environment, object.Value, bool, error) {
	switch f := fn.(type) {
	case *object.BuiltinFn:
		args := make([]object.Value, len(argExprs))
		for i, a := range argExprs {
			v, err := Eval(a, env)
			if err != nil {
				return nil, nil, nil, false, err
			}
			args[i] = v
		}
		result, err := f.Fn(args)
		if err != nil {
			return nil, nil, nil, false, err
		}
		return nil, nil, result, true, nil

	case *object.Closure:
		if f.Macro {
			rawArgs := object.NewList(argExprs...)
			callFrame := f.Env.Extend()
			if err := bindParams(f.Params, rawArgs, callFrame); err != nil {
				return nil, nil, nil, false, err
			}
			expansion, err := evalBodySequenceNonTail(f.Body, callFrame)
			if err != nil {
				return nil, nil, nil, false, err
			}
			// The expansion re-enters the trampoline in the caller's
			// environment, not the macro's frame.
			return expansion, env, nil, false, nil
		}

		args := make([]object.Value, len(argExprs))
		for i, a := range argExprs {
			v, err := Eval(a, env)
			if err != nil {
				return nil, nil, nil, false, err
			}
			args[i] = v
		}
		callFrame := f.Env.Extend()
		if err := bindParams(f.Params, object.NewList(args...), callFrame); err != nil {
			return nil, nil, nil, false, err
		}
		if len(f.Body) == 0 {
			invariant.Invariant(false, "closure constructed with an empty body")
		}
		for _, form := range f.Body[:len(f.Body)-1] {
			if _, err := Eval(form, callFrame); err != nil {
				return nil, nil, nil, false, err
			}
		}
		return f.Body[len(f.Body)-1], callFrame, nil, false, nil

	default:
		return nil, nil, nil, false, evalErrorf("cannot apply a value of type %s; expected a procedure", object.TypeName(fn))
	}
}

// evalBodySequenceNonTail evaluates every form in body, in order, on the
// host stack, returning the last result. Used only for macro expansion,
// which is not itself a tail position relative to its own body (the
// *result* of the whole expansion is what re-enters the trampoline).
func evalBodySequenceNonTail(body []object.Value, env *object.Environment) (object.Value, error) {
	var result object.Value = object.Void{}
	for _, form := range body {
		v, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// bindParams binds actual values V against parameter spec P into env,
// covering all four parameter-spec shapes uniformly.
func bindParams(spec object.Value, values object.Value, env *object.Environment) error {
	for {
		switch s := spec.(type) {
		case object.Null:
			if _, ok := values.(object.Null); !ok {
				return evalErrorf("too many arguments: parameter list exhausted but arguments remain")
			}
			return nil
		case *object.Pair:
			h, ok := s.Car.(object.Symbol)
			if !ok {
				return evalErrorf("parameter spec entries must be symbols")
			}
			vp, ok := values.(*object.Pair)
			if !ok {
				return evalErrorf("too few arguments: missing value for parameter %q", h)
			}
			env.Define(string(h), vp.Car)
			spec, values = s.Cdr, vp.Cdr
			continue
		case object.Symbol:
			env.Define(string(s), values)
			return nil
		default:
			return evalErrorf("invalid parameter spec of type %s", object.TypeName(spec))
		}
	}
}

// EvalSource lexes, parses, and evaluates src's top-level forms in
// order against env, returning the value of the last. A ParseError is
// wrapped as an EvalError.
func EvalSource(src string, env *object.Environment) (object.Value, error) {
	invariant.NotNil(env, "env")

	l := lexer.New()
	l.Init([]byte(src))
	tree, err := parser.Parse(l.Tokens(), src)
	if err != nil {
		return nil, wrapParseError(err)
	}

	var result object.Value = object.Void{}
	for _, expr := range tree.Exprs {
		result, err = Eval(expr, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
