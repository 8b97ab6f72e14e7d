// ============================================================================
// mictylish - scripting language front end
// ============================================================================
//
// Package:     repl
// Description: Tests for the REPL model, driven by key messages
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"io"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	mclog "github.com/msto63/mictylish/foundation/core/log"
)

func newTestModel(history HistoryStore, limit int) Model {
	return New(Config{
		Session:      newTestSession(),
		History:      history,
		HistoryLimit: limit,
		Logger:       mclog.NewWithConfig(mclog.Config{Level: mclog.LevelError, Output: io.Discard}),
	})
}

func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func typeLine(m Model, line string) Model {
	m, _ = send(m,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	return m
}

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelSubmit(t *testing.T) {
	history := NewMemoryHistory()
	m := newTestModel(history, 100)

	m = typeLine(m, "let x = 1")

	got := m.Transcript()
	want := []Line{
		{Kind: LineEcho, Text: "mictylish> let x = 1"},
		{Kind: LineInfo, Text: "let x = 1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Transcript() = %+v, want %+v", got, want)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}

	stored, _ := history.Recent(context.Background(), 10)
	if !reflect.DeepEqual(stored, []string{"let x = 1"}) {
		t.Errorf("stored history = %v", stored)
	}
}

func TestModelBlankInputIgnored(t *testing.T) {
	history := NewMemoryHistory()
	m := newTestModel(history, 100)

	m = typeLine(m, "   ")

	if len(m.Transcript()) != 0 {
		t.Errorf("blank input produced %+v", m.Transcript())
	}
	if stored, _ := history.Recent(context.Background(), 10); len(stored) != 0 {
		t.Errorf("blank input stored: %v", stored)
	}
}

func TestModelQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
	}{
		{"ctrl+c", []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlC}}},
		{"ctrl+d", []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlD}}},
		{":q", []tea.Msg{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(":q")}, tea.KeyMsg{Type: tea.KeyEnter}}},
		{"exit", []tea.Msg{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("exit")}, tea.KeyMsg{Type: tea.KeyEnter}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := send(newTestModel(nil, 10), tt.msgs...)
			if !m.Quitting() {
				t.Error("model should be quitting")
			}
			if !isQuitCmd(cmd) {
				t.Error("expected tea.Quit command")
			}
			if m.View() != "" {
				t.Errorf("View() after quit = %q", m.View())
			}
		})
	}
}

func TestModelHistoryNavigation(t *testing.T) {
	history := NewMemoryHistory()
	ctx := context.Background()
	history.Append(ctx, "old", "let a = 1")
	history.Append(ctx, "old", "let b = 2")

	m := newTestModel(history, 100)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("let c")})

	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	steps := []struct {
		msg  tea.Msg
		want string
	}{
		{up, "let b = 2"},
		{up, "let a = 1"},
		{up, "let a = 1"},
		{down, "let b = 2"},
		{down, "let c"},
		{down, "let c"},
	}
	for i, step := range steps {
		m, _ = send(m, step.msg)
		if got := m.input.Value(); got != step.want {
			t.Errorf("step %d: input = %q, want %q", i, got, step.want)
		}
	}
}

func TestModelHistoryDedupAndLimit(t *testing.T) {
	history := NewMemoryHistory()
	m := newTestModel(history, 2)

	for _, line := range []string{"let a = 1", "let a = 1", "let b = 2", "let c = 3"} {
		m = typeLine(m, line)
	}

	if !reflect.DeepEqual(m.inputHistory, []string{"let b = 2", "let c = 3"}) {
		t.Errorf("inputHistory = %v", m.inputHistory)
	}
	stored, _ := history.Recent(context.Background(), 10)
	if !reflect.DeepEqual(stored, []string{"let b = 2", "let c = 3"}) {
		t.Errorf("stored history = %v", stored)
	}
}

func TestModelHistoryLimitZeroKeepsNothing(t *testing.T) {
	history := NewMemoryHistory()
	history.Append(context.Background(), "earlier", "let old = 0")

	m := newTestModel(history, 0)
	m = typeLine(m, "let a = 1")
	m = typeLine(m, "let b = 2")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})

	if len(m.inputHistory) != 0 {
		t.Errorf("recall list = %q, want empty", m.inputHistory)
	}
	if got := m.input.Value(); got != "" {
		t.Errorf("Up recalled %q with limit 0", got)
	}

	stored, _ := history.Recent(context.Background(), 10)
	if !reflect.DeepEqual(stored, []string{"let old = 0"}) {
		t.Errorf("stored history = %v, want store untouched", stored)
	}
}

func TestModelLoadsPersistedHistory(t *testing.T) {
	store := newTestSQLiteHistory(t)
	store.Append(context.Background(), "earlier", "let persisted = 1")

	m := newTestModel(store, 10)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})

	if got := m.input.Value(); got != "let persisted = 1" {
		t.Errorf("recalled %q from SQLite history", got)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(nil, 10)
	m, _ = send(m, tea.WindowSizeMsg{Width: 60, Height: 10})
	m = typeLine(m, "let = 1")

	view := m.View()
	for _, want := range []string{"let = 1", "error[SYNTAX]", ":help"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
