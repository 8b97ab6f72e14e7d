// Package log provides structured logging for the mictylish tools.
//
// Loggers are leveled and carry context fields. Every With* method returns
// a configured copy, so a logger can be specialised per component without
// affecting its parent. Output goes to stderr by default so that tool output
// on stdout stays machine readable.
//
// Four formats are available: json, text, console (text with ANSI level
// colors) and logfmt. Fields are written in sorted key order.
//
// Errors from the core error package are logged with LogError, which lifts
// the code, severity, operation and details into fields and picks the level
// from the severity.
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatLogfmt).
//		WithField("component", "lang-engine")
//
//	logger.Debug("parse finished", log.Field("statements", 3))
//	logger.LogError(err)
//
//	timer := logger.StartTimer("tokenize")
//	// ... work
//	timer.Stop()
package log
