// File: settings.go
// Title: Typed Settings
// Description: Typed view over the configuration used by the CLI and the
//              REPL, with defaults and semantic validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mcerror "github.com/msto63/mictylish/foundation/core/error"
)

// EnvPrefix prefixes environment overrides, e.g. MICTYLISH_LOG_LEVEL
const EnvPrefix = "MICTYLISH"

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text", "console", "logfmt"}
)

// Settings is the typed configuration of the tools
type Settings struct {
	Log    LogSettings    `json:"log" yaml:"log"`
	Parser ParserSettings `json:"parser" yaml:"parser"`
	REPL   REPLSettings   `json:"repl" yaml:"repl"`
}

// LogSettings configures the process logger
type LogSettings struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// ParserSettings configures the language engine
type ParserSettings struct {
	// MaxSourceBytes rejects larger sources before tokenizing; 0 disables it
	MaxSourceBytes int `json:"max_source_bytes" yaml:"max_source_bytes"`
}

// REPLSettings configures the interactive shell
type REPLSettings struct {
	Prompt       string `json:"prompt" yaml:"prompt"`
	HistoryPath  string `json:"history_path" yaml:"history_path"`
	HistoryLimit int    `json:"history_limit" yaml:"history_limit"`
}

// DefaultSettings returns the built-in settings
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{
			Level:  "warn",
			Format: "text",
		},
		Parser: ParserSettings{
			MaxSourceBytes: 1 << 20,
		},
		REPL: REPLSettings{
			Prompt:       "mictylish> ",
			HistoryPath:  "~/.mictylish/history.db",
			HistoryLimit: 500,
		},
	}
}

// SettingsRules are the raw value rules for a settings file
func SettingsRules() ValidationRules {
	return ValidationRules{
		"log.level":               {Type: "string", OneOf: validLogLevels},
		"log.format":              {Type: "string", OneOf: validLogFormats},
		"parser.max_source_bytes": {Type: "int", Min: IntPtr(0)},
		"repl.prompt":             {Type: "string", Min: IntPtr(1)},
		"repl.history_path":       {Type: "string"},
		"repl.history_limit":      {Type: "int", Min: IntPtr(0)},
	}
}

// LoadSettings reads settings from path. An empty path searches the default
// locations and falls back to DefaultSettings when no file exists.
func LoadSettings(path string) (Settings, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg, err = Discover(DefaultDiscoveryOptions())
	} else {
		cfg, err = LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: EnvPrefix})
	}
	if err != nil {
		return Settings{}, err
	}
	return SettingsFrom(cfg)
}

// SettingsFrom validates cfg and converts it to Settings. Keys absent from
// cfg keep their default values.
func SettingsFrom(cfg *Config) (Settings, error) {
	if result := cfg.Validate(SettingsRules()); !result.Valid {
		return Settings{}, mcerror.New("invalid configuration: "+strings.Join(result.Errors, "; ")).
			WithCode(mcerror.CodeInvalidConfig).
			WithOperation("config.SettingsFrom").
			WithDetail("filePath", cfg.FilePath())
	}

	d := DefaultSettings()
	s := Settings{
		Log: LogSettings{
			Level:  cfg.GetString("log.level", d.Log.Level),
			Format: cfg.GetString("log.format", d.Log.Format),
		},
		Parser: ParserSettings{
			MaxSourceBytes: cfg.GetInt("parser.max_source_bytes", d.Parser.MaxSourceBytes),
		},
		REPL: REPLSettings{
			Prompt:       cfg.GetString("repl.prompt", d.REPL.Prompt),
			HistoryPath:  cfg.GetString("repl.history_path", d.REPL.HistoryPath),
			HistoryLimit: cfg.GetInt("repl.history_limit", d.REPL.HistoryLimit),
		},
	}

	if err := s.Validate(); err != nil {
		return Settings{}, mcerror.Wrap(err, "invalid configuration").
			WithCode(mcerror.CodeInvalidConfig).
			WithOperation("config.SettingsFrom").
			WithDetail("filePath", cfg.FilePath())
	}
	return s, nil
}

// Validate checks the final values, including environment overrides
func (s Settings) Validate() error {
	var errs []error
	if !containsFold(validLogLevels, s.Log.Level) {
		errs = append(errs, fmt.Errorf("unknown log level %q", s.Log.Level))
	}
	if !containsFold(validLogFormats, s.Log.Format) {
		errs = append(errs, fmt.Errorf("unknown log format %q", s.Log.Format))
	}
	if s.Parser.MaxSourceBytes < 0 {
		errs = append(errs, fmt.Errorf("parser.max_source_bytes must not be negative, got %d", s.Parser.MaxSourceBytes))
	}
	if s.REPL.Prompt == "" {
		errs = append(errs, errors.New("repl.prompt must not be empty"))
	}
	if s.REPL.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("repl.history_limit must not be negative, got %d", s.REPL.HistoryLimit))
	}
	return errors.Join(errs...)
}

// HistoryFile returns the history path with a leading ~ expanded. An empty
// result disables persistent history.
func (s Settings) HistoryFile() (string, error) {
	path := s.REPL.HistoryPath
	if path == "" || !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", mcerror.Wrap(err, "cannot resolve home directory").
			WithCode(mcerror.CodeConfigError).
			WithOperation("config.HistoryFile")
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
