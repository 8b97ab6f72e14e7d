// File: doc.go
// Title: AST Package Documentation
// Description: Package documentation for the mictylish syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package ast defines the abstract syntax tree produced by the parser.

Expressions and statements are closed interfaces: the unexported marker
methods keep other packages from adding variants, so a type switch over
*IntLit, *StringLit, *Var and *List (or *LetStmt) is exhaustive. Walk and
Inspect centralise that switch; code that needs per-variant behaviour
should add a case there and let the default panic flag anything missed.

Every node reports a byte span. A statement's span runs from its first
keyword through the end of its last child, and a list's span includes both
brackets, so span.Cover over children never escapes the parent.
*/
package ast
