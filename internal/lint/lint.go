// Package lint offers "did you mean" suggestions for unbound symbols.
// Looking up an unbound symbol is never an error, it silently evaluates
// to Void, so a typo in argument position produces no interpreter error
// at all, and a typo in head position like (dispaly x) only fails with a
// generic "cannot apply" error. This package lets a CLI front end (not
// the evaluator itself) flag such typos as a warning by fuzzy-matching
// unresolved symbols against everything visible in the environment's
// lexical scope.
package lint

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/wisplang/wisp/internal/object"
)

// Suggestion is a single "did you mean" finding for one unresolved
// symbol in a form.
type Suggestion struct {
	Symbol     string
	ClosestTo  string
	SourceForm string
}

func (s Suggestion) String() string {
	return fmt.Sprintf("warning: %q is unbound in %s — did you mean %q?", s.Symbol, s.SourceForm, s.ClosestTo)
}

// checker carries the state threaded through one CheckForm walk: the
// environment's bindings (for the final "is it really unbound" check),
// the full name list to fuzzy-match against, and the set of locals
// introduced by lambda/define/defmacro parameter specs seen so far on
// the current path (these aren't bound in env until the form is
// actually called, but they are not typos either).
type checker struct {
	env     *object.Environment
	names   []string
	special map[string]bool
	locals  map[string]bool
	out     []Suggestion
	form    object.Value
}

// CheckForm walks expr looking for Symbols that are neither bound in
// env, a special form name, nor a lambda/define/defmacro parameter
// introduced earlier in expr, and returns a suggestion for each one that
// has a close fuzzy match among env's visible names.
func CheckForm(expr object.Value, env *object.Environment, specialForms map[string]bool) []Suggestion {
	names := env.VisibleNames()
	sort.Strings(names)
	c := &checker{
		env:     env,
		names:   names,
		special: specialForms,
		locals:  make(map[string]bool),
		form:    expr,
	}
	c.walk(expr)
	return c.out
}

func (c *checker) report(name string) {
	if c.special[name] || c.locals[name] {
		return
	}
	if _, ok := c.env.Lookup(name); ok {
		return
	}
	if closest := closestMatch(name, c.names); closest != "" {
		c.out = append(c.out, Suggestion{
			Symbol:     name,
			ClosestTo:  closest,
			SourceForm: object.Print(c.form, false),
		})
	}
}

// addParamLocals marks every symbol reachable in a parameter spec
// (fixed, dotted-rest, or bare rest-capture) as a local for the
// remainder of this walk.
func (c *checker) addParamLocals(spec object.Value) {
	for {
		switch s := spec.(type) {
		case object.Symbol:
			c.locals[string(s)] = true
			return
		case *object.Pair:
			if h, ok := s.Car.(object.Symbol); ok {
				c.locals[string(h)] = true
			}
			spec = s.Cdr
		default:
			return
		}
	}
}

func (c *checker) walk(v object.Value) {
	switch t := v.(type) {
	case object.Symbol:
		c.report(string(t))
	case *object.Pair:
		elems, proper := object.ListToSlice(t)
		if proper && len(elems) >= 1 {
			if head, ok := elems[0].(object.Symbol); ok {
				switch string(head) {
				case "quote":
					return
				case "lambda":
					if len(elems) >= 2 {
						c.addParamLocals(elems[1])
						for _, form := range elems[2:] {
							c.walk(form)
						}
					}
					return
				case "define", "defmacro":
					if len(elems) >= 2 {
						if target, isPair := elems[1].(*object.Pair); isPair {
							c.addParamLocals(target.Cdr)
							for _, form := range elems[2:] {
								c.walk(form)
							}
							return
						}
						// (define NAME EXPR): NAME is being bound here, not
						// looked up, so it must not be fuzzy-matched as a
						// typo before the define has taken effect.
						if name, isSym := elems[1].(object.Symbol); isSym {
							c.locals[string(name)] = true
							for _, form := range elems[2:] {
								c.walk(form)
							}
							return
						}
					}
				}
			}
		}
		c.walk(t.Car)
		c.walk(t.Cdr)
	}
}

// closestMatch returns the best fuzzy match for target among candidates,
// or "" if none is close enough to be worth suggesting.
func closestMatch(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		// Subsequence matching misses transposed letters ("dispaly" for
		// "display"), so fall back to a candidate within edit distance 2.
		best, bestDist := "", 3
		for _, cand := range candidates {
			if d := fuzzy.LevenshteinDistance(target, cand); d < bestDist {
				best, bestDist = cand, d
			}
		}
		return best
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i].Distance < ranks[j].Distance })
	best := ranks[0]
	if best.Target == target {
		return ""
	}
	return best.Target
}
