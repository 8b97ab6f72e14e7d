// File: render.go
// Title: Diagnostic Renderer
// Description: Turns a diagnostic plus its source text into a report that
//              quotes the offending lines and underlines each labelled span.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial renderer with lipgloss styling

package diag

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mictylish/foundation/lang/span"
)

// DefaultFilename is shown when the source has no file name
const DefaultFilename = "input"

var (
	colorError  = lipgloss.Color("#EF4444")
	colorMuted  = lipgloss.Color("#6B7280")
	colorAccent = lipgloss.Color("#F59E0B")
)

// Renderer formats diagnostics against their source text
type Renderer struct {
	header    func(string) string
	gutter    func(string) string
	primary   func(string) string
	secondary func(string) string
}

// NewRenderer creates a renderer for output written to w. When color is
// false (or w is not a terminal) the report is plain text.
func NewRenderer(w io.Writer, color bool) *Renderer {
	if !color {
		return NewPlainRenderer()
	}
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		header:    paint(lr.NewStyle().Foreground(colorError).Bold(true)),
		gutter:    paint(lr.NewStyle().Foreground(colorMuted)),
		primary:   paint(lr.NewStyle().Foreground(colorError).Bold(true)),
		secondary: paint(lr.NewStyle().Foreground(colorAccent)),
	}
}

func paint(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

// NewPlainRenderer creates a renderer that never emits escape sequences
func NewPlainRenderer() *Renderer {
	plain := func(s string) string { return s }
	return &Renderer{header: plain, gutter: plain, primary: plain, secondary: plain}
}

// Position converts a byte offset into a 1-based line and a 1-based column
// counted in runes. Offsets past the end are clamped.
func Position(source string, offset int) (line, col int) {
	offset = min(max(offset, 0), len(source))
	lineStart := strings.LastIndexByte(source[:offset], '\n') + 1
	line = strings.Count(source[:lineStart], "\n") + 1
	col = utf8.RuneCountInString(source[lineStart:offset]) + 1
	return line, col
}

// Render formats err against source. Errors that are not diagnostics are
// rendered as a single line.
func (r *Renderer) Render(err error, source, filename string) string {
	if filename == "" {
		filename = DefaultFilename
	}

	var d Diagnostic
	if !errors.As(err, &d) {
		return r.header("error") + ": " + err.Error() + "\n"
	}

	labels := d.Labels()
	sort.SliceStable(labels, func(i, j int) bool {
		return labels[i].Span.Offset < labels[j].Span.Offset
	})

	maxLine, _ := Position(source, labels[len(labels)-1].Span.Offset)
	width := len(strconv.Itoa(maxLine))
	pad := strings.Repeat(" ", width)

	var b strings.Builder
	line, col := Position(source, d.Span().Offset)
	fmt.Fprintf(&b, "%s: %s\n", r.header(fmt.Sprintf("error[%s]", d.Code())), d.Error())
	fmt.Fprintf(&b, "%s%s %s:%d:%d\n", pad, r.gutter("-->"), filename, line, col)
	fmt.Fprintf(&b, "%s %s\n", pad, r.gutter("|"))

	primary := d.Span()
	lastLine := 0
	for _, label := range labels {
		at := label.Span
		at.Offset = min(max(at.Offset, 0), len(source))
		ln, _ := Position(source, at.Offset)
		text, lineStart := lineAt(source, at.Offset)
		if ln != lastLine {
			fmt.Fprintf(&b, "%s %s %s\n", r.gutter(fmt.Sprintf("%*d", width, ln)), r.gutter("|"), text)
			lastLine = ln
		}

		style := r.secondary
		if label.Span == primary {
			style = r.primary
		}
		indent := indentFor(text[:at.Offset-lineStart])
		marks := strings.Repeat("^", caretCount(at, text, lineStart))
		fmt.Fprintf(&b, "%s %s %s%s\n", pad, r.gutter("|"), indent, style(marks+" "+label.Message))
	}
	return b.String()
}

// Write renders err to w
func (r *Renderer) Write(w io.Writer, err error, source, filename string) error {
	_, werr := io.WriteString(w, r.Render(err, source, filename))
	return werr
}

// lineAt returns the text of the line containing offset and its start
func lineAt(source string, offset int) (string, int) {
	offset = min(max(offset, 0), len(source))
	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := strings.IndexByte(source[offset:], '\n')
	if end < 0 {
		return source[start:], start
	}
	return source[start : offset+end], start
}

// indentFor keeps tabs so carets line up with the quoted source
func indentFor(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// caretCount clips the span to its first line; empty spans get one caret
func caretCount(sp span.Span, line string, lineStart int) int {
	end := min(sp.End(), lineStart+len(line))
	if end <= sp.Offset {
		return 1
	}
	return max(utf8.RuneCountInString(line[sp.Offset-lineStart:end-lineStart]), 1)
}
