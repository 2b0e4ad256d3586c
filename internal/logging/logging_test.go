package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelInfo, "json", &buf)
	logger.Info("hello", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "hello" || entry["key"] != "value" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewLoggerWithWriter_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelWarn, "text", &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn line missing from output")
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must swallow output at any level.
	Discard().Error("nobody sees this")
}
