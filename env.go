// env.go
//
// Lexical environments: a singly-linked chain of frames mapping names to
// expressions. Lookups start at the youngest frame and walk toward the
// global frame; an inner frame may shadow an outer binding without touching
// it. Frames are plain heap objects shared by reference between closures;
// nothing ever reclaims one mid-run, the chain simply becomes unreachable
// when the closures holding it do.
//
// Two lookup flavors exist on purpose. The evaluator needs the strict one
// (a miss is an UnboundIdentifier error); the parser needs the lenient one
// while it resolves forward references during tree construction.
package nscm

// Env is one frame of the environment chain. parent is nil at the global
// frame.
type Env struct {
	table  map[string]Expr
	parent *Env
}

// NewEnv creates a frame with the given parent (nil for the global frame).
func NewEnv(parent *Env) *Env {
	return &Env{table: make(map[string]Expr), parent: parent}
}

// Child creates a fresh frame whose parent is the receiver. Procedure
// application enters a child frame.
func (e *Env) Child() *Env {
	return NewEnv(e)
}

// Define binds name to v in the receiver's own frame, inserting or
// overwriting unconditionally. It never fails and never touches a parent.
func (e *Env) Define(name string, v Expr) {
	e.table[name] = v
}

// Lookup resolves name against the chain, innermost frame first. A miss
// anywhere in the chain is an UnboundIdentifier error.
func (e *Env) Lookup(name string) (Expr, error) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.table[name]; ok {
			return v, nil
		}
	}
	return nil, evalErrf(ErrUnboundIdentifier, "unbound identifier '%s'", name)
}

// Resolve is the lenient lookup flavor: same search as Lookup, but a miss
// reports (nil, false) instead of failing. The parser uses it to probe for
// previously-defined names while building a tree.
func (e *Env) Resolve(name string) (Expr, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.table[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// ResolveLocal checks only the receiver's own frame.
func (e *Env) ResolveLocal(name string) (Expr, bool) {
	v, ok := e.table[name]
	return v, ok
}

// IsBound reports whether name is defined anywhere in the chain. set! uses
// it for its existence check; the rebind itself always lands in the frame
// performing the set! (shadowing, not ancestor mutation).
func (e *Env) IsBound(name string) bool {
	_, ok := e.Resolve(name)
	return ok
}
