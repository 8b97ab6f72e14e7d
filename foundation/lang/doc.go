// Package lang is the entry point to the mictylish front end.
//
// The subpackages do the work: span and token describe source positions and
// tokens, lexer and parser build an ast.Program, resolver tracks bindings
// and diag holds the error values and their renderer. Engine ties them
// together for callers that want one call per phase:
//
//	engine := lang.New(lang.Options{MaxSourceBytes: 1 << 20})
//	program, diags, err := engine.CheckSource(`let xs = [1, 2]`)
//
// Errors from Tokenize and Parse carry a code from the core error package
// and wrap the underlying diagnostic. Check returns the diagnostics
// unwrapped so they can be rendered directly with diag.Renderer.
package lang
