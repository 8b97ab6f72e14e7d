// ============================================================================
// mictylish - scripting language front end
// ============================================================================
//
// Package:     version
// Description: Central version management for the tools and the language
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Tool is the release version of the mictylish binary
	Tool = "0.1.0"

	// Language is the version of the accepted grammar
	Language = "0.1.0"

	// Component versions
	Lang = "0.1.0"
	REPL = "0.1.0"
)

// Build information, set with -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "language", "grammar":
		return Language
	case "lang":
		return Lang
	case "repl":
		return REPL
	default:
		return Tool
	}
}
