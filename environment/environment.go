// Package environment implements golox's chained lexical scopes: a simple
// name-to-value map per block, each pointing at the scope it's nested
// inside, with lookup and assignment walking outward until a binding is
// found.
//
// Grounded on teacher's scope/scope.go, whose Scope struct walks an
// identical enclosing-pointer chain for LookUp/Bind/Assign. Trimmed to
// spec.md §4.3's contract: no Consts/LetVars/LetTypes bookkeeping (golox
// has no const/let distinction) and no Copy() (function calls chain
// directly to the global environment rather than capturing a snapshot of
// their defining scope — see spec.md's non-goals on closures).
package environment

import "github.com/goloxlang/golox/value"

// Environment holds one block's variable bindings and a pointer to the
// environment it's nested inside (nil for the global environment).
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates a top-level environment with no enclosing scope.
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewChild creates an environment nested inside parent, as for a block,
// function call, or loop body.
func NewChild(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), enclosing: parent}
}

// Define binds name to v in this environment, shadowing any binding of the
// same name in an enclosing scope. Redefining an existing name in the same
// scope is permitted (spec.md §4.3) and simply overwrites it.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get resolves name by walking outward from this environment to the
// global one. ok is false if name is bound nowhere in the chain.
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, found := env.values[name]; found {
			return v, true
		}
	}
	return nil, false
}

// Assign stores v into the nearest existing binding of name, walking
// outward from this environment. ok is false if name is not already bound
// anywhere in the chain — assignment never implicitly declares a new
// variable (spec.md §4.3).
func (e *Environment) Assign(name string, v value.Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, found := env.values[name]; found {
			env.values[name] = v
			return true
		}
	}
	return false
}
