// File: token.go
// Title: Token Model
// Description: Closed set of lexical categories produced by the lexer and
//              consumed by the parser. Every token carries its source span.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token model

// Package token defines the token kinds of the mictylish language.
package token

import (
	"fmt"
	"strconv"

	"github.com/msto63/mictylish/foundation/lang/span"
)

// Kind identifies the lexical category of a token
type Kind int

const (
	// EOF terminates every token stream
	EOF Kind = iota

	// Keywords
	Let
	Mut
	Set
	Fn
	Match
	With
	When
	Io
	Do
	End

	// Carrying-value kinds
	Ident  // name in Token.Text
	Int    // value in Token.Int
	String // content in Token.Text

	// Punctuation and operators
	PipeGreater // |>
	Arrow       // ->
	LeftArrow   // <-
	Equal       // =
	Comma       // ,
	LParen      // (
	RParen      // )
	LBracket    // [
	RBracket    // ]

	kindCount
)

var kindNames = [kindCount]string{
	EOF:         "EOF",
	Let:         "LET",
	Mut:         "MUT",
	Set:         "SET",
	Fn:          "FN",
	Match:       "MATCH",
	With:        "WITH",
	When:        "WHEN",
	Io:          "IO",
	Do:          "DO",
	End:         "END",
	Ident:       "IDENT",
	Int:         "INT",
	String:      "STRING",
	PipeGreater: "PIPE_GREATER",
	Arrow:       "ARROW",
	LeftArrow:   "LEFT_ARROW",
	Equal:       "EQUAL",
	Comma:       "COMMA",
	LParen:      "LPAREN",
	RParen:      "RPAREN",
	LBracket:    "LBRACKET",
	RBracket:    "RBRACKET",
}

// labels are used in diagnostics ("expected X, found <label>")
var kindLabels = [kindCount]string{
	EOF:         "end of input",
	Let:         "`let`",
	Mut:         "`mut`",
	Set:         "`set`",
	Fn:          "`fn`",
	Match:       "`match`",
	With:        "`with`",
	When:        "`when`",
	Io:          "`io`",
	Do:          "`do`",
	End:         "`end`",
	Ident:       "identifier",
	Int:         "integer literal",
	String:      "string literal",
	PipeGreater: "`|>`",
	Arrow:       "`->`",
	LeftArrow:   "`<-`",
	Equal:       "`=`",
	Comma:       "`,`",
	LParen:      "`(`",
	RParen:      "`)`",
	LBracket:    "`[`",
	RBracket:    "`]`",
}

// keywordTexts holds the reserved words in declaration order, Let through End
var keywordTexts = [End - Let + 1]string{
	"let", "mut", "set", "fn", "match", "with", "when", "io", "do", "end",
}

var keywords = func() map[string]Kind {
	m := make(map[string]Kind, len(keywordTexts))
	for i, text := range keywordTexts {
		m[text] = Let + Kind(i)
	}
	return m
}()

// String returns the upper-case name of the kind
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Label returns the human-readable description used in error messages
func (k Kind) Label() string {
	if k < 0 || k >= kindCount {
		return "unknown token"
	}
	return kindLabels[k]
}

// IsKeyword reports whether the kind is a reserved word
func (k Kind) IsKeyword() bool {
	return k >= Let && k <= End
}

// Lookup maps identifier text to its keyword kind, or Ident.
// Matching is case-sensitive.
func Lookup(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}

// Keywords returns the reserved words in declaration order
func Keywords() []string {
	out := make([]string, len(keywordTexts))
	copy(out, keywordTexts[:])
	return out
}

// Token is a single lexical unit with its source span
type Token struct {
	Kind Kind      `json:"kind" yaml:"kind"`
	Span span.Span `json:"span" yaml:"span"`
	Text string    `json:"text,omitempty" yaml:"text,omitempty"`
	Int  int64     `json:"int,omitempty" yaml:"int,omitempty"`
}

// New creates a token without a payload
func New(kind Kind, sp span.Span) Token {
	return Token{Kind: kind, Span: sp}
}

// NewIdent creates an identifier token
func NewIdent(name string, sp span.Span) Token {
	return Token{Kind: Ident, Span: sp, Text: name}
}

// NewInt creates an integer literal token
func NewInt(value int64, sp span.Span) Token {
	return Token{Kind: Int, Span: sp, Int: value}
}

// NewString creates a string literal token holding the unquoted content
func NewString(content string, sp span.Span) Token {
	return Token{Kind: String, Span: sp, Text: content}
}

// Is reports whether the token has the given kind. Payloads are ignored.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

// String returns a debug representation of the token
func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("IDENT(%s)@%s", t.Text, t.Span)
	case Int:
		return fmt.Sprintf("INT(%d)@%s", t.Int, t.Span)
	case String:
		return fmt.Sprintf("STRING(%s)@%s", strconv.Quote(t.Text), t.Span)
	default:
		return fmt.Sprintf("%s@%s", t.Kind, t.Span)
	}
}

// MarshalText renders the kind by name in JSON and YAML output
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
