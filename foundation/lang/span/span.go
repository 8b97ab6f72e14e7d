// File: span.go
// Title: Source Span Arithmetic
// Description: Byte-accurate source spans shared by tokens, AST nodes and
//              diagnostics. Spans are plain values with no reference into
//              the source buffer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package span provides the half-open byte range type used across the
// mictylish front end.
package span

import "fmt"

// Span is the half-open byte range [Offset, Offset+Length) of the source.
type Span struct {
	Offset int `json:"offset" yaml:"offset"`
	Length int `json:"length" yaml:"length"`
}

// New returns the span starting at offset with the given length.
func New(offset, length int) Span {
	return Span{Offset: offset, Length: length}
}

// End returns the offset one past the last byte of the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// Contains reports whether other lies entirely inside s.
func (s Span) Contains(other Span) bool {
	return other.Offset >= s.Offset && other.End() <= s.End()
}

// Text returns the slice of source covered by the span, clamped to the
// source bounds.
func (s Span) Text(source string) string {
	start := min(max(s.Offset, 0), len(source))
	end := min(max(s.End(), start), len(source))
	return source[start:end]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Offset, s.End())
}

// Cover returns the smallest span containing both a and b, in either order.
func Cover(a, b Span) Span {
	start := min(a.Offset, b.Offset)
	end := max(a.End(), b.End())
	return Span{Offset: start, Length: end - start}
}
