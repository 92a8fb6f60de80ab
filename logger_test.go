package cuboid

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestLoggerDefaultDiscards checks that the default logger is enabled
// for nothing.
func TestLoggerDefaultDiscards(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("default logger is enabled; it must discard everything")
	}
}

// TestSetLogger checks that output is routed to the installed logger and
// that nil restores the discarding default.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Logger().Debug("visibility check", "clipped", true)
	if !strings.Contains(buf.String(), "visibility check") {
		t.Fatalf("log output missing record: %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Error("dropped")
	if buf.Len() != 0 {
		t.Errorf("output after reset to default: %q", buf.String())
	}
}
