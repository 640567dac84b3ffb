package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/pathfinder/internal/config"
)

func TestNew_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pf.log")
	logger, err := New(config.LogConfig{Level: "info", File: path}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("plan updated", zap.String("op", "generate"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "plan updated" || entry["op"] != "generate" || entry["level"] != "INFO" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNew_Console(t *testing.T) {
	var console bytes.Buffer
	logger, err := New(config.LogConfig{Level: "warn", File: filepath.Join(t.TempDir(), "pf.log")}, &console)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("history write failed")
	_ = logger.Sync()

	out := console.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("console got info line: %q", out)
	}
	if !strings.Contains(out, "history write failed") {
		t.Errorf("console missing warn line: %q", out)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud", File: filepath.Join(t.TempDir(), "pf.log")}, nil); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestDefaultLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	got, err := DefaultLogPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "pathfinder", "pathfinder.log"); got != want {
		t.Errorf("DefaultLogPath = %q, want %q", got, want)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
	l := zap.NewExample()
	if OrNop(l) != l {
		t.Fatal("OrNop should return the given logger")
	}
}
