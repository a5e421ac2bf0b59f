package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLevelFromConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	lg := New(&buf, "warn")
	if lg.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info must be disabled at warn level")
	}
	lg.Warn("command failed", "command", "sfc /scannow")
	if !strings.Contains(buf.String(), `"command":"sfc /scannow"`) {
		t.Fatalf("expected JSON output, got %s", buf.String())
	}
}

func TestNewEnvOverridesConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	lg := New(&bytes.Buffer{}, "error")
	if !lg.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("LOG_LEVEL must win over config")
	}
}

func TestNewInvalidLevelKeepsDefault(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	lg := New(&bytes.Buffer{}, "loud")
	if !lg.Enabled(context.Background(), slog.LevelInfo) || lg.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("expected info level")
	}
}
