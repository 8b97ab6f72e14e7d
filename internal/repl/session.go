// ============================================================================
// mictylish - scripting language front end
// ============================================================================
//
// Package:     repl
// Description: Line handling for the interactive shell: meta commands,
//              parsing and checking against a session-long scope
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	mclog "github.com/msto63/mictylish/foundation/core/log"
	"github.com/msto63/mictylish/foundation/lang"
	"github.com/msto63/mictylish/foundation/lang/diag"
)

// SourceName labels REPL input in diagnostics
const SourceName = "<repl>"

// LineKind classifies transcript lines for styling
type LineKind int

const (
	LineEcho LineKind = iota
	LineInfo
	LineError
)

// Line is one transcript entry
type Line struct {
	Kind LineKind
	Text string
}

// Reply is the result of handling one input
type Reply struct {
	// Accepted is false for blank input, which is ignored entirely
	Accepted bool
	Quit     bool
	Lines    []Line
}

// Session evaluates REPL input. It is driven from the bubbletea update loop
// and is not safe for concurrent use.
type Session struct {
	id       string
	prompt   string
	engine   *lang.Engine
	scope    *lang.Session
	renderer *diag.Renderer
	logger   *mclog.Logger
}

// NewSession starts a session with a fresh id and an empty scope
func NewSession(engine *lang.Engine, prompt string, logger *mclog.Logger) *Session {
	if logger == nil {
		logger = mclog.GetDefault()
	}
	id := uuid.New().String()
	return &Session{
		id:       id,
		prompt:   prompt,
		engine:   engine,
		scope:    engine.NewSession(),
		renderer: diag.NewPlainRenderer(),
		logger:   logger.WithName("repl").WithCorrelationID(id),
	}
}

// ID returns the session id stored with history rows
func (s *Session) ID() string {
	return s.id
}

// Prompt returns the input prompt
func (s *Session) Prompt() string {
	return s.prompt
}

// Handle processes one input line
func (s *Session) Handle(input string) Reply {
	line := strings.TrimSpace(input)
	if line == "" {
		return Reply{}
	}

	reply := Reply{Accepted: true, Lines: []Line{{Kind: LineEcho, Text: s.prompt + line}}}

	switch {
	case isQuit(line):
		s.logger.Info("session ended", mclog.Field("inputs", s.scope.Inputs()))
		reply.Quit = true
		return reply
	case line == ":help":
		reply.Lines = append(reply.Lines, info(helpText))
	case line == ":reset":
		s.scope.Reset()
		reply.Lines = append(reply.Lines, info("scope cleared"))
	case line == ":tokens" || strings.HasPrefix(line, ":tokens "):
		reply.Lines = append(reply.Lines, s.tokens(strings.TrimSpace(strings.TrimPrefix(line, ":tokens")))...)
	case strings.HasPrefix(line, ":"):
		reply.Lines = append(reply.Lines, errorLine(fmt.Sprintf("unknown command %s (try :help)", strings.Fields(line)[0])))
	default:
		reply.Lines = append(reply.Lines, s.eval(line)...)
	}
	return reply
}

func (s *Session) eval(source string) []Line {
	program, diags, err := s.scope.Eval(source)
	if err != nil {
		return []Line{errorLine(s.render(err, source))}
	}

	var out []Line
	for _, d := range diags {
		out = append(out, errorLine(s.render(d, source)))
	}
	if len(diags) == 0 && len(program.Stmts) > 0 {
		out = append(out, info(program.String()))
	}
	return out
}

func (s *Session) tokens(source string) []Line {
	if source == "" {
		return []Line{errorLine("usage: :tokens <source>")}
	}
	tokens, err := s.engine.Tokenize(source)
	if err != nil {
		return []Line{errorLine(s.render(err, source))}
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return []Line{info(strings.Join(parts, " "))}
}

func (s *Session) render(err error, source string) string {
	return strings.TrimRight(s.renderer.Render(err, source, SourceName), "\n")
}

func isQuit(line string) bool {
	switch line {
	case ":q", ":quit", "exit":
		return true
	}
	return false
}

func info(text string) Line      { return Line{Kind: LineInfo, Text: text} }
func errorLine(text string) Line { return Line{Kind: LineError, Text: text} }

const helpText = `:tokens <src>  show the token stream of src
:reset         forget all bindings
:q, :quit      leave (also exit, Ctrl+C, Ctrl+D)`
