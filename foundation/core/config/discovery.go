// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements configuration file discovery across the working
//              directory and the user configuration directory.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: mictylish search locations, optional discovery
//                      yields an empty config

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mcerror "github.com/msto63/mictylish/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches ./mictylish.{toml,yaml,yml} and then
// the same names below the user configuration directory
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "mictylish"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"mictylish"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
	}
}

// Discover finds and loads the first configuration file in the search
// locations. When none exists and the options do not require one, an empty
// configuration is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	configPath, err := FindConfigFile(options)
	if err != nil {
		if !options.Required {
			return Empty(options.EnvPrefix), nil
		}
		return nil, mcerror.New(fmt.Sprintf("no configuration file found in paths: %s",
			strings.Join(ListPossibleConfigFiles(options), ", "))).
			WithCode(mcerror.CodeNotFound).
			WithOperation("config.Discover")
	}

	config, err := LoadWithOptions(configPath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
	if err != nil {
		return nil, mcerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}
	return config, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mcerror.New("configuration file not found").
		WithCode(mcerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all candidate configuration file paths in
// search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
