// File: resolver.go
// Title: Lexical Scope Resolver
// Description: Tracks names per lexical scope and rejects any definition of
//              a name that is already visible, including from an enclosing
//              scope. Not safe for concurrent use; each compilation owns one.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial resolver implementation

// Package resolver detects duplicate and shadowing bindings.
package resolver

import (
	"github.com/msto63/mictylish/foundation/lang/diag"
	"github.com/msto63/mictylish/foundation/lang/span"
)

// scope maps a name to the span of its first definition
type scope map[string]span.Span

// Resolver is a stack of scopes; index 0 is the global scope
type Resolver struct {
	scopes []scope
}

// New creates a resolver holding only the global scope
func New() *Resolver {
	return &Resolver{scopes: []scope{{}}}
}

// PushScope enters a nested lexical region
func (r *Resolver) PushScope() {
	r.scopes = append(r.scopes, scope{})
}

// PopScope leaves the innermost region. The global scope is never popped.
func (r *Resolver) PopScope() {
	if len(r.scopes) > 1 {
		r.scopes[len(r.scopes)-1] = nil
		r.scopes = r.scopes[:len(r.scopes)-1]
	}
}

// Depth returns the number of scopes on the stack (at least 1)
func (r *Resolver) Depth() int {
	return len(r.scopes)
}

// Define registers name in the innermost scope. It fails with a
// *diag.NameError if name is visible from any scope on the stack.
func (r *Resolver) Define(name string, at span.Span) error {
	if first, ok := r.Lookup(name); ok {
		return &diag.NameError{Name: name, First: first, Second: at}
	}
	r.scopes[len(r.scopes)-1][name] = at
	return nil
}

// Lookup returns the span of the innermost visible definition of name
func (r *Resolver) Lookup(name string) (span.Span, bool) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if at, ok := r.scopes[i][name]; ok {
			return at, true
		}
	}
	return span.Span{}, false
}

// IsDefined reports whether name is visible without changing any state
func (r *Resolver) IsDefined(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}
