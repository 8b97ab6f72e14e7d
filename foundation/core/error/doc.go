// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for structured errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial documentation
// - 2026-10-19 v0.2.0: Rewritten for the mictylish tool chain

/*
Package error provides coded, severity-ranked errors for the mictylish
tool chain.

Source diagnostics (lexical, syntax and naming errors) are small values in
foundation/lang/diag. The engine, the CLI and the configuration layer wrap
them with an *Error to attach an operation and structured details:

	err := mcerror.Wrap(diagErr, "parse failed").
		WithOperation("lang.Parse").
		WithDetail("source_bytes", len(src))

Wrap inherits the code of anything implementing Code() Code, and
errors.As still reaches the original diagnostic through Unwrap.
*/
package error
