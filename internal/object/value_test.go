package object

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"ints equal", Int(3), Int(3), true},
		{"ints differ", Int(3), Int(4), false},
		{"bools equal", Bool(true), Bool(true), true},
		{"bools differ", Bool(true), Bool(false), false},
		{"symbols equal", Symbol("x"), Symbol("x"), true},
		{"symbols differ", Symbol("x"), Symbol("y"), false},
		{"null equal", Null{}, Null{}, true},
		{"void equal", Void{}, Void{}, true},
		{"cross-type", Int(1), Bool(true), false},
		{
			"structurally equal lists",
			NewList(Int(1), Int(2), Int(3)),
			NewList(Int(1), Int(2), Int(3)),
			true,
		},
		{
			"structurally different lists",
			NewList(Int(1), Int(2)),
			NewList(Int(1), Int(3)),
			false,
		},
		{
			"dotted pair equality",
			NewImproperList(Symbol("c"), Symbol("a"), Symbol("b")),
			NewImproperList(Symbol("c"), Symbol("a"), Symbol("b")),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestClosureIdentity(t *testing.T) {
	env := NewGlobal()
	c1 := &Closure{Params: Null{}, Body: nil, Env: env}
	c2 := &Closure{Params: Null{}, Body: nil, Env: env}
	if Equal(c1, c1) != true {
		t.Error("a closure must be eq? to itself")
	}
	if Equal(c1, c2) {
		t.Error("distinct closures must not be eq? even with identical shape")
	}
}

func TestListToSlice(t *testing.T) {
	lst := NewList(Int(1), Int(2), Int(3))
	got, ok := ListToSlice(lst)
	if !ok {
		t.Fatal("expected proper list")
	}
	want := []Value{Int(1), Int(2), Int(3)}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !Equal(got[i], want[i]) {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}

	improper := NewImproperList(Symbol("tail"), Int(1), Int(2))
	if _, ok := ListToSlice(improper); ok {
		t.Error("improper list must report ok=false")
	}
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name       string
		v          Value
		quoteOuter bool
		want       string
	}{
		{"void", Void{}, false, ""},
		{"int", Int(42), false, "42"},
		{"negative int", Int(-7), false, "-7"},
		{"true", Bool(true), false, "#t"},
		{"false", Bool(false), false, "#f"},
		{"symbol", Symbol("foo"), false, "foo"},
		{"empty list unquoted", Null{}, false, "()"},
		{"empty list quoted", Null{}, true, "'()"},
		{"list unquoted", NewList(Int(1), Int(2)), false, "(1 2)"},
		{"list quoted", NewList(Int(1), Int(2)), true, "'(1 2)"},
		{
			"dotted pair",
			NewImproperList(Symbol("c"), Symbol("a"), Symbol("b")),
			false,
			"(a b . c)",
		},
		{
			"nested list",
			NewList(Int(1), NewList(Int(2), Int(3)), Int(4)),
			false,
			"(1 (2 3) 4)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.v, tt.quoteOuter); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}
