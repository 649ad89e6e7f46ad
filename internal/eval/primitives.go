package eval

import (
	"fmt"
	"os"

	"github.com/wisplang/wisp/internal/object"
)

// registerPrimitives binds the built-in procedures into env, which must
// be the root environment.
func registerPrimitives(env *object.Environment) {
	for _, p := range []struct {
		name string
		fn   object.BuiltinFunc
	}{
		{"+", primAdd},
		{"*", primMul},
		{"-", primSub},
		{"eq?", primEq},
		{"cons", primCons},
		{"car", primCar},
		{"cdr", primCdr},
		{"null?", primNullP},
		{"display", primDisplay},
	} {
		env.Define(p.name, &object.BuiltinFn{Name: p.name, Fn: p.fn})
	}
}

func primAdd(args []object.Value) (object.Value, error) {
	var sum int64
	for i, a := range args {
		n, ok := a.(object.Int)
		if !ok {
			return nil, evalErrorf("+ expects all Int arguments, argument %d is %s", i, object.TypeName(a))
		}
		sum += int64(n)
	}
	return object.Int(sum), nil
}

func primMul(args []object.Value) (object.Value, error) {
	product := int64(1)
	for i, a := range args {
		n, ok := a.(object.Int)
		if !ok {
			return nil, evalErrorf("* expects all Int arguments, argument %d is %s", i, object.TypeName(a))
		}
		product *= int64(n)
	}
	return object.Int(product), nil
}

func primSub(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, evalErrorf("- expects exactly 2 arguments, got %d", len(args))
	}
	a, ok := args[0].(object.Int)
	if !ok {
		return nil, evalErrorf("- expects Int arguments, got %s", object.TypeName(args[0]))
	}
	b, ok := args[1].(object.Int)
	if !ok {
		return nil, evalErrorf("- expects Int arguments, got %s", object.TypeName(args[1]))
	}
	return object.Int(a - b), nil
}

func primEq(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, evalErrorf("eq? expects exactly 2 arguments, got %d", len(args))
	}
	return object.Bool(object.Equal(args[0], args[1])), nil
}

func primCons(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, evalErrorf("cons expects exactly 2 arguments, got %d", len(args))
	}
	return &object.Pair{Car: args[0], Cdr: args[1]}, nil
}

func primCar(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, evalErrorf("car expects exactly 1 argument, got %d", len(args))
	}
	p, ok := args[0].(*object.Pair)
	if !ok {
		return nil, evalErrorf("car expects a Pair, got %s", object.TypeName(args[0]))
	}
	return p.Car, nil
}

func primCdr(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, evalErrorf("cdr expects exactly 1 argument, got %d", len(args))
	}
	p, ok := args[0].(*object.Pair)
	if !ok {
		return nil, evalErrorf("cdr expects a Pair, got %s", object.TypeName(args[0]))
	}
	return p.Cdr, nil
}

func primNullP(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, evalErrorf("null? expects exactly 1 argument, got %d", len(args))
	}
	_, ok := args[0].(object.Null)
	return object.Bool(ok), nil
}

func primDisplay(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, evalErrorf("display expects exactly 1 argument, got %d", len(args))
	}
	fmt.Fprint(os.Stdout, object.Print(args[0], false))
	return object.Void{}, nil
}
