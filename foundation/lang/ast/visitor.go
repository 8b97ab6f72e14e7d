// File: visitor.go
// Title: AST Traversal
// Description: Depth-first traversal over the closed node set, plus a
//              plain-data dump used by the CLI for JSON and YAML output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial traversal implementation

package ast

import (
	"fmt"

	"github.com/msto63/mictylish/foundation/lang/span"
)

// Visitor is called for each node by Walk. If Visit returns nil the
// children of node are skipped.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses node depth-first in source order
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}
	case *LetStmt:
		Walk(v, n.Value)
	case *List:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *IntLit, *StringLit, *Var:
		// leaves
	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for each node; returning false skips the children
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Vars returns every variable reference under node in source order
func Vars(node Node) []*Var {
	var out []*Var
	Inspect(node, func(n Node) bool {
		if v, ok := n.(*Var); ok {
			out = append(out, v)
		}
		return true
	})
	return out
}

// Dump is a plain-data view of a node for serialization
type Dump struct {
	Type     string     `json:"type" yaml:"type"`
	Span     span.Span  `json:"span" yaml:"span"`
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	NameSpan *span.Span `json:"name_span,omitempty" yaml:"name_span,omitempty"`
	Mutable  bool       `json:"mutable,omitempty" yaml:"mutable,omitempty"`
	Value    any        `json:"value,omitempty" yaml:"value,omitempty"`
	Children []Dump     `json:"children,omitempty" yaml:"children,omitempty"`
}

// ToDump converts a node into its serializable form
func ToDump(node Node) Dump {
	switch n := node.(type) {
	case *Program:
		d := Dump{Type: "program", Span: n.Span()}
		for _, stmt := range n.Stmts {
			d.Children = append(d.Children, ToDump(stmt))
		}
		return d
	case *LetStmt:
		nameSpan := n.NameSpan
		return Dump{
			Type:     "let",
			Span:     n.At,
			Name:     n.Name,
			NameSpan: &nameSpan,
			Mutable:  n.Mutable,
			Children: []Dump{ToDump(n.Value)},
		}
	case *IntLit:
		return Dump{Type: "int", Span: n.At, Value: n.Value}
	case *StringLit:
		return Dump{Type: "string", Span: n.At, Value: n.Value}
	case *Var:
		return Dump{Type: "var", Span: n.At, Name: n.Name}
	case *List:
		d := Dump{Type: "list", Span: n.At, Children: []Dump{}}
		for _, item := range n.Items {
			d.Children = append(d.Children, ToDump(item))
		}
		return d
	default:
		panic(fmt.Sprintf("ast.ToDump: unexpected node type %T", n))
	}
}
