// ============================================================================
// mictylish - scripting language front end
// ============================================================================
//
// Package:     runtime
// Description: External command specification and runner. Arguments are
//              passed to the program as given, never through a shell.
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package runtime

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	mcerror "github.com/msto63/mictylish/foundation/core/error"
	mclog "github.com/msto63/mictylish/foundation/core/log"
)

// CommandSpec names a program and its literal arguments. The zero value has
// no program. Specs are immutable; WithArg returns a new spec.
type CommandSpec struct {
	program string
	args    []string
}

// NewCommandSpec creates a spec for program with no arguments
func NewCommandSpec(program string) CommandSpec {
	return CommandSpec{program: program}
}

// Program returns the program name or path
func (c CommandSpec) Program() string {
	return c.program
}

// Args returns a copy of the arguments
func (c CommandSpec) Args() []string {
	return append([]string(nil), c.args...)
}

// WithArg returns a copy of c with arg appended
func (c CommandSpec) WithArg(arg string) CommandSpec {
	args := make([]string, len(c.args), len(c.args)+1)
	copy(args, c.args)
	return CommandSpec{program: c.program, args: append(args, arg)}
}

// WithArgs returns a copy of c with args appended
func (c CommandSpec) WithArgs(args ...string) CommandSpec {
	for _, arg := range args {
		c = c.WithArg(arg)
	}
	return c
}

// String renders the spec for display, quoting words that need it
func (c CommandSpec) String() string {
	parts := make([]string, 0, len(c.args)+1)
	for _, word := range append([]string{c.program}, c.args...) {
		if word == "" || strings.ContainsAny(word, " \t\n\"'\\") {
			word = strconv.Quote(word)
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

// Result is the outcome of a program that ran to completion
type Result struct {
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration"`
}

// Success reports a zero exit code
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes command specs
type Runner struct {
	// Dir is the working directory; empty means the current one
	Dir string

	// Stdout and Stderr, when set, receive output as the program writes it.
	// The result still carries the full captured text.
	Stdout io.Writer
	Stderr io.Writer

	logger *mclog.Logger
}

// NewRunner creates a runner logging through logger (the default if nil)
func NewRunner(logger *mclog.Logger) *Runner {
	if logger == nil {
		logger = mclog.GetDefault()
	}
	return &Runner{logger: logger.WithField("component", "runtime")}
}

// Run executes spec with the default runner
func Run(ctx context.Context, spec CommandSpec) (*Result, error) {
	return NewRunner(nil).Run(ctx, spec)
}

// Run executes spec and waits for it. A program that starts and exits with
// a non-zero status is not an error; its code is in the result. Failing to
// start and cancellation are EXECUTION_FAILED errors.
func (r *Runner) Run(ctx context.Context, spec CommandSpec) (*Result, error) {
	if spec.program == "" {
		return nil, mcerror.New("command has no program").
			WithCode(mcerror.CodeInvalidInput).
			WithOperation("runtime.Run")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, spec.program, spec.args...)
	cmd.Dir = r.Dir
	cmd.Stdout = tee(&stdout, r.Stdout)
	cmd.Stderr = tee(&stderr, r.Stderr)

	r.logger.Debug("running command", mclog.Fields{"command": spec.String()})
	start := time.Now()
	err := cmd.Run()
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, mcerror.Wrap(ctxErr, "command interrupted").
			WithCode(mcerror.CodeExecutionFailed).
			WithOperation("runtime.Run").
			WithDetail("command", spec.String())
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return nil, mcerror.Wrap(err, "failed to start command").
			WithCode(mcerror.CodeExecutionFailed).
			WithOperation("runtime.Run").
			WithDetail("command", spec.String())
	}

	r.logger.Debug("command finished", mclog.Fields{
		"command":     spec.String(),
		"exit_code":   result.ExitCode,
		"duration_ms": result.Duration.Milliseconds(),
	})
	return result, nil
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}
