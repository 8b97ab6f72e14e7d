// File: checker.go
// Title: Binding Checker
// Description: Walks let statements in source order, reporting references
//              to undefined names and definitions that collide with a
//              visible name.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial checker implementation

package lang

import (
	"github.com/msto63/mictylish/foundation/lang/ast"
	"github.com/msto63/mictylish/foundation/lang/diag"
	"github.com/msto63/mictylish/foundation/lang/resolver"
)

// check never stops at the first problem. The initializer is checked before
// the binding is defined, so `let x = x` reports x as undefined.
func check(r *resolver.Resolver, program *ast.Program) []error {
	var diags []error
	for _, stmt := range program.Stmts {
		let, ok := stmt.(*ast.LetStmt)
		if !ok {
			continue
		}
		for _, v := range ast.Vars(let.Value) {
			if !r.IsDefined(v.Name) {
				diags = append(diags, &diag.UndefinedError{Name: v.Name, At: v.At})
			}
		}
		if err := r.Define(let.Name, let.NameSpan); err != nil {
			diags = append(diags, err)
		}
	}
	return diags
}
