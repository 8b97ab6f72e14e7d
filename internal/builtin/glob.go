// ============================================================================
// mictylish - scripting language front end
// ============================================================================
//
// Package:     builtin
// Description: Explicit filesystem glob. Patterns are never expanded
//              implicitly; a caller asks for expansion by calling Glob.
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package builtin

import (
	"path/filepath"
	"sort"

	mcerror "github.com/msto63/mictylish/foundation/core/error"
)

// Glob returns the paths matching pattern in sorted order. No match yields
// an empty, non-nil slice. A malformed pattern is an INVALID_INPUT error.
func Glob(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, mcerror.New("glob pattern cannot be empty").
			WithCode(mcerror.CodeInvalidInput).
			WithOperation("builtin.Glob")
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, mcerror.Wrap(err, "invalid glob pattern").
			WithCode(mcerror.CodeInvalidInput).
			WithOperation("builtin.Glob").
			WithDetail("pattern", pattern)
	}
	if matches == nil {
		return []string{}, nil
	}
	sort.Strings(matches)
	return matches, nil
}
