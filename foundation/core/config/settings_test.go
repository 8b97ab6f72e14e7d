// File: settings_test.go
// Title: Typed Settings Tests
// Description: Tests for defaults, conversion and semantic validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	mcerror "github.com/msto63/mictylish/foundation/core/error"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("DefaultSettings().Validate() = %v", err)
	}
	if s.REPL.Prompt != "mictylish> " {
		t.Errorf("default prompt = %q", s.REPL.Prompt)
	}
	if s.Parser.MaxSourceBytes != 1048576 {
		t.Errorf("default max_source_bytes = %d", s.Parser.MaxSourceBytes)
	}
}

func TestSettingsFromPartialFile(t *testing.T) {
	cfg, err := LoadFromString(`
[log]
format = "json"

[repl]
history_path = ""
`, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	s, err := SettingsFrom(cfg)
	if err != nil {
		t.Fatalf("SettingsFrom() error = %v", err)
	}

	want := DefaultSettings()
	want.Log.Format = "json"
	want.REPL.HistoryPath = ""
	if s != want {
		t.Errorf("SettingsFrom() = %+v, want %+v", s, want)
	}
}

func TestSettingsFromInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"negative limit", "[repl]\nhistory_limit = -5\n", "repl.history_limit"},
		{"empty prompt", "[repl]\nprompt = \"\"\n", "repl.prompt"},
		{"wrong type", "[parser]\nmax_source_bytes = \"big\"\n", "must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, FormatTOML)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}
			_, err = SettingsFrom(cfg)
			if err == nil {
				t.Fatal("SettingsFrom() should fail")
			}
			if !mcerror.HasCode(err, mcerror.CodeInvalidConfig) {
				t.Errorf("error code = %v, want INVALID_CONFIG", mcerror.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestSettingsEnvOverrideValidated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mictylish.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"info\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MICTYLISH_LOG_LEVEL", "debug")
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want env override", s.Log.Level)
	}

	t.Setenv("MICTYLISH_LOG_LEVEL", "chatty")
	if _, err := LoadSettings(path); err == nil {
		t.Error("LoadSettings() should reject an invalid env override")
	}
}

func TestLoadSettingsExplicitMissing(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	if !mcerror.HasCode(err, mcerror.CodeNotFound) {
		t.Errorf("LoadSettings(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestHistoryFile(t *testing.T) {
	s := DefaultSettings()

	s.REPL.HistoryPath = ""
	if got, _ := s.HistoryFile(); got != "" {
		t.Errorf("HistoryFile() = %q, want empty", got)
	}

	s.REPL.HistoryPath = "/tmp/h.db"
	if got, _ := s.HistoryFile(); got != "/tmp/h.db" {
		t.Errorf("HistoryFile() = %q", got)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	s.REPL.HistoryPath = "~/.mictylish/history.db"
	got, err := s.HistoryFile()
	if err != nil {
		t.Fatalf("HistoryFile() error = %v", err)
	}
	if want := filepath.Join(home, ".mictylish", "history.db"); got != want {
		t.Errorf("HistoryFile() = %q, want %q", got, want)
	}
}
