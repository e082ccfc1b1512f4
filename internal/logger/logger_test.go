package logger

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
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, "warn", FormatText)
	l.Info("hidden")
	l.Warn("shown", "column", "duration")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}

	if !strings.Contains(out, "shown") || !strings.Contains(out, "column=duration") {
		t.Errorf("warn message missing from output: %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, "info", FormatJSON).With("run", 1).Info("cleaning complete", "rows", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	if entry["msg"] != "cleaning complete" {
		t.Errorf("msg = %v, want cleaning complete", entry["msg"])
	}

	if entry["rows"] != float64(3) || entry["run"] != float64(1) {
		t.Errorf("attributes = %v, want rows=3 run=1", entry)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer

	l := New(&buf, "info", FormatText)
	l.Debug("before")
	l.SetLevel("debug")
	l.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") || !strings.Contains(out, "after") {
		t.Errorf("SetLevel did not take effect: %q", out)
	}
}
