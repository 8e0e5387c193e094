package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	l := New(Config{Level: level, Output: buf, Prefix: "test"})
	l.sink.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return l
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"WARNING", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug)

	l.WithComponent("action").WithField("set", "gameplay").Warn("unknown binding %d", 999)

	want := "2024-03-01T12:00:00.000 [WARN] test: unknown binding 999 {component=action, set=gameplay}\n"
	if got := buf.String(); got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below level, got %q", buf.String())
	}

	l.Error("shown")
	if !strings.Contains(buf.String(), "[ERROR] test: shown") {
		t.Errorf("missing error line, got %q", buf.String())
	}
}

func TestLoggerChildSharesSink(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelInfo)
	child := l.WithComponent("decoder")

	l.SetLevel(LevelError)
	child.Warn("suppressed")
	if buf.Len() != 0 {
		t.Errorf("child ignored parent level change: %q", buf.String())
	}

	l.Disable()
	child.Error("suppressed")
	if buf.Len() != 0 {
		t.Errorf("child ignored Disable: %q", buf.String())
	}

	l.Enable()
	child.Error("visible")
	if !strings.Contains(buf.String(), "visible {component=decoder}") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	l := Null()
	l.Error("nothing")
	l.WithComponent("x").Error("nothing")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	SetDefault(nil)
	if Default() != orig {
		t.Fatal("SetDefault(nil) replaced the default logger")
	}

	l := Null()
	SetDefault(l)
	if Default() != l {
		t.Error("SetDefault did not replace the default logger")
	}
}
