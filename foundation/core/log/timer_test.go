// File: timer_test.go
// Title: Performance Timer Tests
// Description: Tests for timer completion logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with timer tests
// - 2026-10-19 v0.2.0: Failure path

package log

import (
	"errors"
	"strings"
	"testing"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := logger.WithField("component", "lang-engine").StartTimer("tokenize").WithField("tokens", 4)

	timer.Stop()

	out := buf.String()
	for _, want := range []string{"level=debug", `message="tokenize completed"`, `operation="tokenize"`, "tokens=4", `component="lang-engine"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestTimerStopTwice(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)
	timer := logger.StartTimer("parse")
	timer.Stop()
	first := buf.Len()

	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}
	if buf.Len() != first {
		t.Error("second Stop() should not log")
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)
	logger.StartTimer("parse").StopWithError(errors.New("unexpected token"))

	out := buf.String()
	if !strings.Contains(out, "level=warn") || !strings.Contains(out, `message="parse failed"`) {
		t.Errorf("failure output = %q", out)
	}
}

func TestTimerBelowLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo)
	if d := logger.StartTimer("check").Stop(); d < 0 {
		t.Errorf("Stop() = %v", d)
	}
	if buf.Len() != 0 {
		t.Errorf("debug timer logged at info level: %q", buf.String())
	}
}
