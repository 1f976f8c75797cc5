package app

import (
	"strings"
	"testing"
)

func TestLoggerWritesAtOrAboveLevel(t *testing.T) {
	var buf strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	l.Debug("too quiet")
	l.Info("still too quiet")
	l.Warn("heard")
	l.Error("also heard")

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("suppressed levels leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] test: heard") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] test: also heard") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestLoggerFormatsArgs(t *testing.T) {
	var buf strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	l.Info("saved %d bytes to %s", 42, "doc.txt")

	if !strings.Contains(buf.String(), "saved 42 bytes to doc.txt") {
		t.Errorf("got %q", buf.String())
	}
}

func TestWithComponentAppendsField(t *testing.T) {
	var buf strings.Builder
	l := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	l.WithComponent("session").Info("ready")

	if !strings.Contains(buf.String(), "{component=session}") {
		t.Errorf("got %q", buf.String())
	}
}

func TestNullLoggerIsSilent(t *testing.T) {
	// Must not panic despite its zero output writer.
	NullLogger.Error("nobody hears this")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"WARN", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
