package eval

import "github.com/wisplang/wisp/internal/object"

// quasiquote copies v, replacing every Pair of the shape (unquote EXPR)
// with the result of evaluating EXPR in env, the environment active at
// quasiquote time, not the environment (if any) the replacement value is
// later used in. Nesting is not tracked: an unquote inside a nested
// quasiquote is still replaced here.
func quasiquote(v object.Value, env *object.Environment) (object.Value, error) {
	p, ok := v.(*object.Pair)
	if !ok {
		return v, nil
	}

	if head, ok := p.Car.(object.Symbol); ok && head == "unquote" {
		rest, ok := p.Cdr.(*object.Pair)
		if !ok {
			return nil, evalErrorf("unquote expects exactly 1 argument")
		}
		if _, isNull := rest.Cdr.(object.Null); !isNull {
			return nil, evalErrorf("unquote expects exactly 1 argument")
		}
		return Eval(rest.Car, env)
	}

	car, err := quasiquote(p.Car, env)
	if err != nil {
		return nil, err
	}
	cdr, err := quasiquote(p.Cdr, env)
	if err != nil {
		return nil, err
	}
	return &object.Pair{Car: car, Cdr: cdr}, nil
}
