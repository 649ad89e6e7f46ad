package object

import (
	"sort"
	"testing"
)

func TestEnvironmentLookupChain(t *testing.T) {
	root := NewGlobal()
	root.Define("x", Int(1))

	child := root.Extend()
	child.Define("y", Int(2))

	if v, ok := child.Lookup("y"); !ok || !Equal(v, Int(2)) {
		t.Fatalf("child.Lookup(y) = %v, %v", v, ok)
	}
	if v, ok := child.Lookup("x"); !ok || !Equal(v, Int(1)) {
		t.Fatalf("child.Lookup(x) = %v, %v, want inherited binding", v, ok)
	}
	if _, ok := root.Lookup("y"); ok {
		t.Fatal("root must not see child's bindings")
	}
	if _, ok := child.Lookup("z"); ok {
		t.Fatal("unbound name must report ok=false")
	}
}

func TestEnvironmentShadowing(t *testing.T) {
	root := NewGlobal()
	root.Define("x", Int(1))
	child := root.Extend()
	child.Define("x", Int(2))

	if v, _ := child.Lookup("x"); !Equal(v, Int(2)) {
		t.Errorf("child shadow = %v, want 2", v)
	}
	if v, _ := root.Lookup("x"); !Equal(v, Int(1)) {
		t.Errorf("root binding mutated by shadowing, got %v", v)
	}
}

func TestEnvironmentSet(t *testing.T) {
	root := NewGlobal()
	root.Define("x", Int(1))
	child := root.Extend()

	if !child.Set("x", Int(99)) {
		t.Fatal("Set should find x in an ancestor frame")
	}
	if v, _ := root.Lookup("x"); !Equal(v, Int(99)) {
		t.Errorf("root.x = %v, want 99 after Set through child", v)
	}
	if child.Set("never-defined", Int(0)) {
		t.Error("Set on an unbound name must report false")
	}
}

func TestEnvironmentVisibleNames(t *testing.T) {
	root := NewGlobal()
	root.Define("a", Int(1))
	child := root.Extend()
	child.Define("b", Int(2))

	names := child.VisibleNames()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("VisibleNames() = %v, want [a b]", names)
	}

	own := child.Bindings()
	if len(own) != 1 || own[0] != "b" {
		t.Errorf("Bindings() = %v, want [b]", own)
	}
}
