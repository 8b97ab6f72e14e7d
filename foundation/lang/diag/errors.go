// File: errors.go
// Title: Source Diagnostics
// Description: Error values raised by the lexer, the parser and the scope
//              resolver. Each carries a message and the span(s) it refers to.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial diagnostic types

package diag

import (
	"fmt"

	mcerror "github.com/msto63/mictylish/foundation/core/error"
	"github.com/msto63/mictylish/foundation/lang/span"
)

// Diagnostic is implemented by every error that points into source text
type Diagnostic interface {
	error
	Code() mcerror.Code
	Span() span.Span
	Labels() []Label
}

// Label annotates one span in a rendered report
type Label struct {
	Span    span.Span
	Message string
}

// LexError is raised by the tokenizer
type LexError struct {
	Message string
	At      span.Span
}

// NewLexError creates a lexical error at the given span
func NewLexError(message string, at span.Span) *LexError {
	return &LexError{Message: message, At: at}
}

func (e *LexError) Error() string      { return e.Message }
func (e *LexError) Code() mcerror.Code { return mcerror.CodeLexical }
func (e *LexError) Span() span.Span    { return e.At }

// Labels returns the single location of the error
func (e *LexError) Labels() []Label {
	return []Label{{Span: e.At, Message: "lexical error here"}}
}

// Category separates syntax that will never be valid from syntax the
// grammar reserves for later
type Category int

const (
	// CategoryInvalid marks input that is not part of the language
	CategoryInvalid Category = iota
	// CategoryReserved marks a reserved keyword used where an expression is expected
	CategoryReserved
	// CategoryUnsupported marks syntax that is recognised but not available yet
	CategoryUnsupported
)

func (c Category) String() string {
	switch c {
	case CategoryInvalid:
		return "invalid"
	case CategoryReserved:
		return "reserved"
	case CategoryUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// SyntaxError is raised by the parser
type SyntaxError struct {
	Message  string
	At       span.Span
	Category Category
}

// NewSyntaxError creates an invalid-syntax error at the given span
func NewSyntaxError(message string, at span.Span) *SyntaxError {
	return &SyntaxError{Message: message, At: at, Category: CategoryInvalid}
}

func (e *SyntaxError) Error() string      { return e.Message }
func (e *SyntaxError) Code() mcerror.Code { return mcerror.CodeSyntax }
func (e *SyntaxError) Span() span.Span    { return e.At }

// Labels returns the single location of the error
func (e *SyntaxError) Labels() []Label {
	return []Label{{Span: e.At, Message: "parse error here"}}
}

// NameError is raised by the resolver when a visible name is defined again
type NameError struct {
	Name   string
	First  span.Span
	Second span.Span
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name '%s' already defined", e.Name)
}

func (e *NameError) Code() mcerror.Code { return mcerror.CodeNameConflict }

// Span returns the location of the conflicting definition
func (e *NameError) Span() span.Span { return e.Second }

// Labels points at both definitions, earliest first
func (e *NameError) Labels() []Label {
	return []Label{
		{Span: e.First, Message: "previous definition here"},
		{Span: e.Second, Message: "redefined here"},
	}
}

// UndefinedError is reported by the checker for references to unknown names
type UndefinedError struct {
	Name string
	At   span.Span
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("name '%s' is not defined", e.Name)
}

func (e *UndefinedError) Code() mcerror.Code { return mcerror.CodeUndefinedName }
func (e *UndefinedError) Span() span.Span    { return e.At }

// Labels returns the single location of the reference
func (e *UndefinedError) Labels() []Label {
	return []Label{{Span: e.At, Message: "not found in scope"}}
}
