// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for the mictylish parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial documentation

/*
Package parser implements the recursive descent parser for mictylish.

Grammar:

	program   := statement*
	statement := 'let' 'mut'? identifier '=' expression
	expression:= primary
	primary   := integer | string | identifier | list
	list      := '[' (expression (',' expression)*)? ']'

Errors are *diag.SyntaxError values. Their Category tells apart input that
is simply wrong (CategoryInvalid), a reserved keyword used as an expression
(CategoryReserved), and the pipe operator, which is tokenized but not
parsed yet (CategoryUnsupported).
*/
package parser
