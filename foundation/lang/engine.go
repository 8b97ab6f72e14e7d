// File: engine.go
// Title: Language Engine
// Description: High-level interface over the lexer, parser and resolver.
//              Enforces the source size limit, wraps diagnostics in coded
//              errors and logs each phase.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package lang

import (
	"errors"
	"fmt"

	mcerror "github.com/msto63/mictylish/foundation/core/error"
	mclog "github.com/msto63/mictylish/foundation/core/log"
	"github.com/msto63/mictylish/foundation/lang/ast"
	"github.com/msto63/mictylish/foundation/lang/diag"
	"github.com/msto63/mictylish/foundation/lang/lexer"
	"github.com/msto63/mictylish/foundation/lang/parser"
	"github.com/msto63/mictylish/foundation/lang/resolver"
	"github.com/msto63/mictylish/foundation/lang/token"
)

// Engine runs the front end phases on source text. It holds no per-source
// state and is safe for concurrent use.
type Engine struct {
	logger  *mclog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger *mclog.Logger

	// MaxSourceBytes rejects larger sources; 0 disables the limit
	MaxSourceBytes int
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mclog.GetDefault()
	}
	return &Engine{
		logger:  opts.Logger.WithField("component", "lang-engine"),
		options: opts,
	}
}

// Tokenize splits source into tokens ending with EOF
func (e *Engine) Tokenize(source string) ([]token.Token, error) {
	if err := e.checkSize(source, "lang.Tokenize"); err != nil {
		return nil, err
	}

	timer := e.logger.StartTimer("tokenize").WithField("bytes", len(source))
	tokens, err := lexer.Lex(source)
	if err != nil {
		wrapped := e.wrap(err, "tokenize failed", "lang.Tokenize")
		timer.StopWithError(wrapped)
		return nil, wrapped
	}
	timer.WithField("tokens", len(tokens)).Stop()
	return tokens, nil
}

// Parse tokenizes and parses source into a program
func (e *Engine) Parse(source string) (*ast.Program, error) {
	if err := e.checkSize(source, "lang.Parse"); err != nil {
		return nil, err
	}

	e.logger.Debug("parse started", mclog.Field("bytes", len(source)))
	timer := e.logger.StartTimer("parse").WithField("bytes", len(source))
	program, err := parser.Parse(source)
	if err != nil {
		wrapped := e.wrap(err, "parse failed", "lang.Parse")
		timer.StopWithError(wrapped)
		return nil, wrapped
	}
	timer.WithField("statements", len(program.Stmts)).Stop()
	return program, nil
}

// Check resolves every binding of program in a fresh global scope and
// returns all naming diagnostics in source order
func (e *Engine) Check(program *ast.Program) []error {
	return e.checkWith(resolver.New(), program)
}

// CheckSource parses and checks source. err is set when parsing fails; the
// diagnostics are the naming problems of a successfully parsed program.
func (e *Engine) CheckSource(source string) (program *ast.Program, diags []error, err error) {
	program, err = e.Parse(source)
	if err != nil {
		return nil, nil, err
	}
	return program, e.Check(program), nil
}

func (e *Engine) checkWith(r *resolver.Resolver, program *ast.Program) []error {
	timer := e.logger.StartTimer("check").WithField("statements", len(program.Stmts))
	diags := check(r, program)
	timer.WithField("diagnostics", len(diags)).Stop()
	for _, d := range diags {
		e.logger.Debug("check diagnostic", mclog.Fields{
			"code":    codeOf(d).String(),
			"message": d.Error(),
		})
	}
	return diags
}

func (e *Engine) checkSize(source, operation string) error {
	limit := e.options.MaxSourceBytes
	if limit <= 0 || len(source) <= limit {
		return nil
	}
	err := mcerror.New(fmt.Sprintf("source is %d bytes, limit is %d", len(source), limit)).
		WithCode(mcerror.CodeSourceTooLarge).
		WithOperation(operation).
		WithDetail("bytes", len(source)).
		WithDetail("limit", limit)
	e.logger.LogError(err)
	return err
}

// wrap attaches the operation and the span of a diagnostic to err. The
// diagnostic stays reachable with errors.As.
func (e *Engine) wrap(err error, message, operation string) error {
	wrapped := mcerror.Wrap(err, message).WithOperation(operation)
	var d diag.Diagnostic
	if errors.As(err, &d) {
		wrapped = wrapped.
			WithDetail("offset", d.Span().Offset).
			WithDetail("length", d.Span().Length)
	}
	return wrapped
}

func codeOf(err error) mcerror.Code {
	var d diag.Diagnostic
	if errors.As(err, &d) {
		return d.Code()
	}
	return mcerror.GetCode(err)
}
