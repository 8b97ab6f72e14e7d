// ============================================================================
// mictylish - scripting language front end
// ============================================================================
//
// Package:     repl
// Description: Tests for REPL line handling
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"io"
	"strings"
	"testing"

	mclog "github.com/msto63/mictylish/foundation/core/log"
	"github.com/msto63/mictylish/foundation/lang"
)

const testPrompt = "mictylish> "

func newTestSession() *Session {
	logger := mclog.NewWithConfig(mclog.Config{Level: mclog.LevelError, Output: io.Discard})
	engine := lang.New(lang.Options{Logger: logger})
	return NewSession(engine, testPrompt, logger)
}

func TestSessionHandle(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantQuit  bool
		wantKinds []LineKind
		wantText  string
	}{
		{"binding", "let x = 1", false, []LineKind{LineEcho, LineInfo}, "let x = 1"},
		{"normalizes", "let   xs=[1,\"a\"]", false, []LineKind{LineEcho, LineInfo}, `let xs = [1, "a"]`},
		{"syntax error", "let = 1", false, []LineKind{LineEcho, LineError}, "error[SYNTAX]: expected identifier, found `=`"},
		{"lexical error", "let y = @", false, []LineKind{LineEcho, LineError}, "error[LEXICAL]"},
		{"undefined", "let y = nope", false, []LineKind{LineEcho, LineError}, "name 'nope' is not defined"},
		{"tokens", ":tokens let y", false, []LineKind{LineEcho, LineInfo}, "LET@0..3 IDENT(y)@4..5 EOF@5..5"},
		{"tokens without source", ":tokens", false, []LineKind{LineEcho, LineError}, "usage: :tokens <source>"},
		{"help", ":help", false, []LineKind{LineEcho, LineInfo}, ":reset"},
		{"unknown command", ":frobnicate now", false, []LineKind{LineEcho, LineError}, "unknown command :frobnicate"},
		{"quit", ":q", true, []LineKind{LineEcho}, ""},
		{"quit long", ":quit", true, []LineKind{LineEcho}, ""},
		{"exit", "  exit  ", true, []LineKind{LineEcho}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := newTestSession().Handle(tt.input)

			if !reply.Accepted {
				t.Fatal("Handle() did not accept input")
			}
			if reply.Quit != tt.wantQuit {
				t.Errorf("Quit = %v, want %v", reply.Quit, tt.wantQuit)
			}
			if len(reply.Lines) != len(tt.wantKinds) {
				t.Fatalf("Lines = %+v, want kinds %v", reply.Lines, tt.wantKinds)
			}
			for i, k := range tt.wantKinds {
				if reply.Lines[i].Kind != k {
					t.Errorf("Lines[%d].Kind = %v, want %v", i, reply.Lines[i].Kind, k)
				}
			}
			if want := testPrompt + strings.TrimSpace(tt.input); reply.Lines[0].Text != want {
				t.Errorf("echo = %q, want %q", reply.Lines[0].Text, want)
			}
			if tt.wantText != "" && !strings.Contains(reply.Lines[len(reply.Lines)-1].Text, tt.wantText) {
				t.Errorf("last line = %q, want to contain %q", reply.Lines[len(reply.Lines)-1].Text, tt.wantText)
			}
		})
	}
}

func TestSessionIgnoresBlankInput(t *testing.T) {
	s := newTestSession()
	for _, input := range []string{"", "   ", "\t"} {
		if reply := s.Handle(input); reply.Accepted || len(reply.Lines) != 0 {
			t.Errorf("Handle(%q) = %+v, want ignored", input, reply)
		}
	}
}

func TestSessionScopeAcrossLines(t *testing.T) {
	s := newTestSession()
	s.Handle("let x = 1")

	reply := s.Handle("let x = 2")
	last := reply.Lines[len(reply.Lines)-1]
	if last.Kind != LineError || !strings.Contains(last.Text, "error[NAME_CONFLICT]: name 'x' already defined") {
		t.Errorf("redefinition reply = %+v", reply.Lines)
	}
	if !strings.Contains(last.Text, "--> <repl>:1:5") {
		t.Errorf("diagnostic should point into the input: %q", last.Text)
	}

	s.Handle(":reset")
	reply = s.Handle("let x = 2")
	if reply.Lines[len(reply.Lines)-1].Kind != LineInfo {
		t.Errorf("after :reset = %+v", reply.Lines)
	}
}

func TestSessionIDs(t *testing.T) {
	a, b := newTestSession(), newTestSession()
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("session ids %q and %q should be distinct and non-empty", a.ID(), b.ID())
	}
}
