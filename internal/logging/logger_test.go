package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	if err != nil || lvl != zapcore.DebugLevel {
		t.Fatalf("ParseLevel(DEBUG) = %v, %v", lvl, err)
	}
	lvl, err = ParseLevel("")
	if err != nil || lvl != zapcore.InfoLevel {
		t.Fatalf("ParseLevel(\"\") = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vaultos.log")
	logger, err := New("info", path, "")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("state loaded", zap.String("backend", "local"))
	logger.Debug("hidden")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, "state loaded") || !strings.Contains(out, `"backend":"local"`) {
		t.Fatalf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %q", out)
	}
}

func TestNewWithoutOutputIsNop(t *testing.T) {
	logger, err := New("info", "", "")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("expected no-op logger")
	}
}
