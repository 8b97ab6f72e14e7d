// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the mictylish front end, its CLI and
//              the interactive shell.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Language front end codes, dropped service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Language front end
	CodeLexical        Code = "LEXICAL"
	CodeSyntax         Code = "SYNTAX"
	CodeNameConflict   Code = "NAME_CONFLICT"
	CodeUndefinedName  Code = "UNDEFINED_NAME"
	CodeSourceTooLarge Code = "SOURCE_TOO_LARGE"

	// Runtime helpers
	CodeExecutionFailed Code = "EXECUTION_FAILED"
	CodeStorageError    Code = "STORAGE_ERROR"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeSyntax, CodeNameConflict, CodeUndefinedName, CodeSourceTooLarge,
		CodeExecutionFailed, CodeStorageError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeSourceTooLarge:
		return "parse"
	case CodeNameConflict, CodeUndefinedName:
		return "resolve"
	case CodeExecutionFailed, CodeStorageError:
		return "runtime"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsDiagnostic reports whether the code describes a problem in user source
func (c Code) IsDiagnostic() bool {
	switch c.Category() {
	case "parse", "resolve":
		return true
	default:
		return false
	}
}
