// File: nodes.go
// Title: AST Node Definitions
// Description: Statement and expression nodes of the mictylish language.
//              Every node carries a span covering all of its children.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/mictylish/foundation/lang/span"
)

// Node is implemented by every AST node
type Node interface {
	// Span returns the source range of the node
	Span() span.Span

	// String returns a source-like representation of the node
	String() string
}

// Expr is a closed set of expression variants. Only types in this package
// implement it.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a closed set of statement variants
type Stmt interface {
	Node
	stmtNode()
}

// Program is the ordered sequence of top-level statements
type Program struct {
	Stmts []Stmt
}

// Span covers all statements, or is empty for an empty program
func (p *Program) Span() span.Span {
	if len(p.Stmts) == 0 {
		return span.Span{}
	}
	return span.Cover(p.Stmts[0].Span(), p.Stmts[len(p.Stmts)-1].Span())
}

func (p *Program) String() string {
	parts := make([]string, len(p.Stmts))
	for i, stmt := range p.Stmts {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, "\n")
}

// LetStmt binds a name: let [mut] name = expr
type LetStmt struct {
	Name     string
	NameSpan span.Span // exactly the identifier token
	Mutable  bool
	Value    Expr
	At       span.Span // from `let` through the end of Value
}

func (s *LetStmt) Span() span.Span { return s.At }
func (s *LetStmt) stmtNode()       {}

func (s *LetStmt) String() string {
	if s.Mutable {
		return fmt.Sprintf("let mut %s = %s", s.Name, s.Value)
	}
	return fmt.Sprintf("let %s = %s", s.Name, s.Value)
}

// IntLit is an integer literal
type IntLit struct {
	Value int64
	At    span.Span
}

func (e *IntLit) Span() span.Span { return e.At }
func (e *IntLit) String() string  { return strconv.FormatInt(e.Value, 10) }
func (e *IntLit) exprNode()       {}

// StringLit is a string literal; Value holds the unquoted content
type StringLit struct {
	Value string
	At    span.Span
}

func (e *StringLit) Span() span.Span { return e.At }
func (e *StringLit) String() string  { return `"` + e.Value + `"` }
func (e *StringLit) exprNode()       {}

// Var is a reference to a bound name
type Var struct {
	Name string
	At   span.Span
}

func (e *Var) Span() span.Span { return e.At }
func (e *Var) String() string  { return e.Name }
func (e *Var) exprNode()       {}

// List is a bracketed list literal; At includes both brackets
type List struct {
	Items []Expr
	At    span.Span
}

func (e *List) Span() span.Span { return e.At }
func (e *List) exprNode()       {}

func (e *List) String() string {
	parts := make([]string, len(e.Items))
	for i, item := range e.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
