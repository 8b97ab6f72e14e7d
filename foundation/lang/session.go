// File: session.go
// Title: Interactive Session
// Description: Keeps one global scope alive across several inputs so that
//              a name defined on an earlier line cannot be redefined later.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial session implementation

package lang

import (
	"github.com/msto63/mictylish/foundation/lang/ast"
	"github.com/msto63/mictylish/foundation/lang/resolver"
)

// Session checks successive inputs against a shared resolver. Not safe for
// concurrent use.
type Session struct {
	engine   *Engine
	resolver *resolver.Resolver
	inputs   int
}

// NewSession starts a session with an empty global scope
func (e *Engine) NewSession() *Session {
	return &Session{engine: e, resolver: resolver.New()}
}

// Eval parses source and checks it against the names defined so far. A
// parse failure is returned as err and leaves the scope untouched.
func (s *Session) Eval(source string) (program *ast.Program, diags []error, err error) {
	program, err = s.engine.Parse(source)
	if err != nil {
		return nil, nil, err
	}
	s.inputs++
	return program, s.engine.checkWith(s.resolver, program), nil
}

// IsDefined reports whether name was bound by an earlier input
func (s *Session) IsDefined(name string) bool {
	return s.resolver.IsDefined(name)
}

// Inputs returns the number of successfully parsed inputs since the last reset
func (s *Session) Inputs() int {
	return s.inputs
}

// Reset forgets every binding
func (s *Session) Reset() {
	s.resolver = resolver.New()
	s.inputs = 0
	s.engine.logger.Debug("session scope reset")
}
