package main

import (
	"path/filepath"
	"testing"

	"github.com/wisplang/wisp/internal/eval"
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/replcache"
)

func TestEvalTrackedArithmetic(t *testing.T) {
	env := eval.NewRootEnv()
	cache := replcache.Open(filepath.Join(t.TempDir(), "cache.cbor"))

	result, err := evalTracked("(+ 1 2)", env, cache, false, true)
	if err != nil {
		t.Fatalf("evalTracked: %v", err)
	}
	if result != object.Int(3) {
		t.Errorf("result = %v, want 3", result)
	}
}

func TestEvalTrackedReusesCacheOnSecondCall(t *testing.T) {
	env := eval.NewRootEnv()
	cache := replcache.Open(filepath.Join(t.TempDir(), "cache.cbor"))

	src := "(define x 41) (+ x 1)"
	first, err := evalTracked(src, env, cache, false, true)
	if err != nil {
		t.Fatalf("first evalTracked: %v", err)
	}
	second, err := evalTracked(src, env, cache, false, true)
	if err != nil {
		t.Fatalf("second evalTracked: %v", err)
	}
	if first != second {
		t.Errorf("first = %v, second = %v, want identical results from a cache hit", first, second)
	}
}

func TestEvalTrackedSurfacesParseErrors(t *testing.T) {
	env := eval.NewRootEnv()
	cache := replcache.Open(filepath.Join(t.TempDir(), "cache.cbor"))

	_, err := evalTracked("(+ 1 2", env, cache, false, true)
	if err == nil {
		t.Fatal("expected a parse error for an unterminated list")
	}
}

func TestEvalTrackedSurfacesEvalErrors(t *testing.T) {
	env := eval.NewRootEnv()
	cache := replcache.Open(filepath.Join(t.TempDir(), "cache.cbor"))

	_, err := evalTracked("(1 2 3)", env, cache, false, true)
	if err == nil {
		t.Fatal("expected an error applying a non-callable value")
	}
}

func TestEvalTrackedLintSkippedWhenNoLint(t *testing.T) {
	env := eval.NewRootEnv()
	cache := replcache.Open(filepath.Join(t.TempDir(), "cache.cbor"))

	// "dispaly" is an unbound typo, but it's never called, so evaluation
	// succeeds regardless of noLint; this only exercises that passing
	// noLint=true doesn't change the evaluated result.
	result, err := evalTracked("(quote dispaly)", env, cache, false, true)
	if err != nil {
		t.Fatalf("evalTracked: %v", err)
	}
	if result != object.Symbol("dispaly") {
		t.Errorf("result = %v, want the symbol dispaly", result)
	}
}
