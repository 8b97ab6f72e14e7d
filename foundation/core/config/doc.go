// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides and exposes the typed Settings used by
//              the mictylish CLI and REPL.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed settings, discovery without hot reload

/*
Package config provides configuration loading for the mictylish tools.

Key Features:
  - TOML and YAML files, format detected from the extension
  - Dot-notation getters with defaults
  - Environment overrides: with prefix MICTYLISH, log.level is read from
    MICTYLISH_LOG_LEVEL before the file value
  - Rule based validation of raw values
  - Typed Settings with defaults

# Basic Configuration Loading

	cfg, err := config.Load("mictylish.toml")
	if err != nil {
		return err
	}
	level := cfg.GetString("log.level", "warn")
	limit := cfg.GetInt("parser.max_source_bytes", 1<<20)

# Settings

LoadSettings reads a given file, or searches ./mictylish.toml (and .yaml,
.yml) followed by the user configuration directory when no path is given.
A missing file in the search case yields DefaultSettings.

	settings, err := config.LoadSettings(flagPath)
	if err != nil {
		return err
	}
	fmt.Println(settings.REPL.Prompt)

Errors carry codes from the core error package: NOT_FOUND for a missing
explicit file, INVALID_CONFIG for parse and validation failures and
CONFIG_ERROR for I/O problems.
*/
package config
