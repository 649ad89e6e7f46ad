package object

// An Environment is a lexical scope: a chain of frames from the current
// scope up to the global frame. Lookup walks the chain; Define always
// writes into the current frame.
//
// Frames live in a shared arena per root Environment, and an Environment
// value is just (arena pointer, frame index) rather than a direct pointer
// to its parent frame. A Closure holds an *Environment handle, so a
// closure's captured scope is an index into the arena, never a raw
// pointer to a frame. Frames refer to their parents by index only. A
// closure stored in a frame still points back to the arena that owns
// that frame; such cycles are left to Go's garbage collector.
type Environment struct {
	arena *arena
	frame int
}

type frame struct {
	vars   map[string]Value
	parent int // -1 for the root frame
}

type arena struct {
	frames []*frame
}

// NewGlobal creates a fresh root Environment with no parent.
func NewGlobal() *Environment {
	a := &arena{frames: []*frame{{vars: make(map[string]Value), parent: -1}}}
	return &Environment{arena: a, frame: 0}
}

// Extend creates a new child scope of e, sharing e's arena.
func (e *Environment) Extend() *Environment {
	f := &frame{vars: make(map[string]Value), parent: e.frame}
	e.arena.frames = append(e.arena.frames, f)
	return &Environment{arena: e.arena, frame: len(e.arena.frames) - 1}
}

// Define binds name to v in e's own frame, shadowing any outer binding.
func (e *Environment) Define(name string, v Value) {
	e.arena.frames[e.frame].vars[name] = v
}

// Set rebinds name in the nearest enclosing frame where it is already
// bound. It reports whether such a frame was found.
func (e *Environment) Set(name string, v Value) bool {
	for id := e.frame; id != -1; id = e.arena.frames[id].parent {
		f := e.arena.frames[id]
		if _, ok := f.vars[name]; ok {
			f.vars[name] = v
			return true
		}
	}
	return false
}

// Lookup resolves name by walking from e up to the root frame. Unbound
// names are the caller's concern: an unbound symbol evaluates to Void
// rather than erroring, so Lookup simply reports ok=false and lets the
// evaluator decide.
func (e *Environment) Lookup(name string) (Value, bool) {
	for id := e.frame; id != -1; id = e.arena.frames[id].parent {
		if v, ok := e.arena.frames[id].vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Bindings returns the names bound directly in e's own frame (not
// ancestors); VisibleNames covers the whole scope chain.
func (e *Environment) Bindings() []string {
	f := e.arena.frames[e.frame]
	names := make([]string, 0, len(f.vars))
	for name := range f.vars {
		names = append(names, name)
	}
	return names
}

// VisibleNames returns every name bound anywhere on e's frame chain,
// innermost first, for spell-checking unbound symbols against the whole
// lexical scope rather than just the immediate frame.
func (e *Environment) VisibleNames() []string {
	var names []string
	for id := e.frame; id != -1; id = e.arena.frames[id].parent {
		f := e.arena.frames[id]
		for name := range f.vars {
			names = append(names, name)
		}
	}
	return names
}
