package pipeline

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"catalogclean/internal/config"
	"catalogclean/internal/logger"
)

const rawCSV = `Show ID,Type,Date Added,Duration,Country,Rating,Listed In,Cast,Director
s1,Movie,"September 25, 2021",90 min,,PG-13,"Comedy, Dramas",,
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.csv")

	if err := os.WriteFile(in, []byte(rawCSV), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Input.Path = in
	cfg.Output.Path = filepath.Join(dir, "out", "clean.csv")

	res, err := Run(cfg, logger.Discard())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Stats.Rows != 1 || res.Stats.FilledCountries != 1 {
		t.Errorf("Stats = %+v, want 1 row with filled country", res.Stats)
	}

	if res.ReportPath != "" {
		t.Errorf("ReportPath = %q, want empty when not configured", res.ReportPath)
	}

	if res.Summary == nil || res.Summary.Titles != 1 {
		t.Errorf("Summary = %+v, want 1 title", res.Summary)
	}

	if _, err := os.Stat(cfg.Output.Path); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := Run(cfg, logger.Discard())
	if !errors.Is(err, config.ErrMissingInputPath) {
		t.Errorf("Run error = %v, want %v", err, config.ErrMissingInputPath)
	}
}

func TestRun_ReportFailureRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.csv")

	if err := os.WriteFile(in, []byte(rawCSV), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Input.Path = in
	cfg.Output.Path = filepath.Join(dir, "out", "clean.csv")
	cfg.Output.ReportPath = filepath.Join(dir, "out", "summary.md")

	// A non-empty directory where the report should go makes its rename fail.
	if err := os.MkdirAll(filepath.Join(cfg.Output.ReportPath, "keep"), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	if _, err := Run(cfg, logger.Discard()); err == nil {
		t.Fatal("Run expected error when the report cannot be written")
	}

	if _, err := os.Stat(cfg.Output.Path); !os.IsNotExist(err) {
		t.Errorf("cleaned output left behind after failed run: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(cfg.Output.Path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file %s left behind", e.Name())
		}
	}
}

func TestRun_LogsCarryInputPath(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.csv")

	if err := os.WriteFile(in, []byte(rawCSV), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Input.Path = in
	cfg.Output.Path = filepath.Join(dir, "clean.csv")

	var buf bytes.Buffer

	if _, err := Run(cfg, logger.New(&buf, "debug", logger.FormatText)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "effective configuration") || !strings.Contains(out, "MinutesPerSeason: 45") {
		t.Errorf("debug log missing configuration entry: %q", out)
	}

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.Contains(line, "input="+in) {
			t.Errorf("log line without input attribute: %q", line)
		}
	}
}
