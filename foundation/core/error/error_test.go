// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Front end codes and diagnostic wrapping

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type codedErr struct{ code Code }

func (c codedErr) Error() string { return "coded" }
func (c codedErr) Code() Code    { return c.code }

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("bad config").WithCode(CodeInvalidConfig),
			message:  "load",
			wantMsg:  "load: bad config",
			wantCode: CodeInvalidConfig,
		},
		{
			name:     "wrap plain value with Code method",
			err:      codedErr{code: CodeSyntax},
			message:  "parse failed",
			wantMsg:  "parse failed: coded",
			wantCode: CodeSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapKeepsDiagnosticReachable(t *testing.T) {
	inner := codedErr{code: CodeNameConflict}
	err := Wrap(inner, "check").WithOperation("lang.Check")

	var target codedErr
	if !errors.As(err, &target) {
		t.Fatal("errors.As should find the wrapped diagnostic")
	}
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}
	if !HasCode(err, CodeNameConflict) {
		t.Error("HasCode() should find the code through the chain")
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntax, SeverityLow},
		{CodeExecutionFailed, SeverityMedium},
		{CodeStorageError, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	if !CodeLexical.IsDiagnostic() || !CodeUndefinedName.IsDiagnostic() {
		t.Error("source codes should be diagnostics")
	}
	if CodeConfigError.IsDiagnostic() {
		t.Error("config code should not be a diagnostic")
	}
	if Code("BOGUS").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("a", 1)
	d := err.Details()
	d["b"] = 2
	if _, ok := err.Details()["b"]; ok {
		t.Error("Details() should return a copy")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("disk full"), "history append").
		WithCode(CodeStorageError).
		WithOperation("repl.History.Append").
		WithDetail("path", "/tmp/h.db")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("MarshalJSON() error = %v", mErr)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out["code"] != "STORAGE_ERROR" {
		t.Errorf("code = %v, want STORAGE_ERROR", out["code"])
	}
	if out["severity"] != "high" {
		t.Errorf("severity = %v, want high", out["severity"])
	}
	if !strings.Contains(out["cause"].(string), "disk full") {
		t.Errorf("cause = %v", out["cause"])
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode() = %v, want %v", got, CodeUnknown)
	}
	if got := GetSeverity(codedErr{code: CodeSyntax}); got != SeverityLow {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityLow)
	}
}
