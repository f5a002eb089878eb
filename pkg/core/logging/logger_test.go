package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"garbage", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.expected)
		}
	}
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("test", LevelWarn, &buf)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")
	logger.Error("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output should not contain filtered lines: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "also shown") {
		t.Errorf("output missing expected lines: %q", out)
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("client", LevelDebug, &buf)

	logger.Info("connected", "address", "localhost:50051", "attempt", 1)

	out := buf.String()
	for _, want := range []string{"[client]", "connected", "address=localhost:50051", "attempt=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLogger_DanglingKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("client", LevelDebug, &buf)

	logger.Info("msg", "key1", "v1", "dangling")

	out := buf.String()
	if !strings.Contains(out, "key1=v1") {
		t.Errorf("output %q missing key1=v1", out)
	}
	if strings.Contains(out, "dangling") {
		t.Errorf("dangling key should be dropped: %q", out)
	}
}

func TestFields_Pairs(t *testing.T) {
	f := Fields{"b": 2, "a": 1, "c": 3}
	pairs := f.Pairs()

	expected := []interface{}{"a", 1, "b", 2, "c", 3}
	if len(pairs) != len(expected) {
		t.Fatalf("Pairs() len = %d, want %d", len(pairs), len(expected))
	}
	for i := range expected {
		if pairs[i] != expected[i] {
			t.Errorf("Pairs()[%d] = %v, want %v", i, pairs[i], expected[i])
		}
	}
}
