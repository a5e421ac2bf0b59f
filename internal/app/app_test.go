package app

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"itsupport/internal/config"
	"itsupport/internal/storage"
)

func TestAppExitsOnExitKey(t *testing.T) {
	cfg := config.Default()
	var out bytes.Buffer
	a, err := NewApp(context.Background(), cfg, Options{In: strings.NewReader("22\n"), Out: &out, ErrOut: &out})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer a.Close()

	if a.Registry.Len() != 22 {
		t.Fatalf("expected 22 entries, got %d", a.Registry.Len())
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "1. Check and Repair Disk (CHKDSK)") || !strings.Contains(text, "22. Exit") {
		t.Fatalf("menu not rendered:\n%s", text)
	}
	if !strings.Contains(text, "Choose an option (1-22): ") || !strings.Contains(text, "Exiting...") {
		t.Fatalf("unexpected output:\n%s", text)
	}
	if strings.Count(text, "22. Exit") != 1 {
		t.Fatalf("menu rendered after exit:\n%s", text)
	}
}

func TestAppRejectsBadPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Actions.AdminPolicy = map[string]string{"2": "perhaps"}
	if _, err := NewApp(context.Background(), cfg, Options{In: strings.NewReader(""), Out: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected admin policy error")
	}
}

func TestAppAuditsExecutedCommands(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("runs the catalog through /bin/sh")
	}
	cfg := config.Default()
	cfg.Menu.InvalidPauseMS = 0
	cfg.Audit.Enabled = true
	cfg.Audit.SQLitePath = filepath.Join(t.TempDir(), "audit.db")

	// flush DNS, Enter at the pause, then exit
	var out bytes.Buffer
	a, err := NewApp(context.Background(), cfg, Options{In: strings.NewReader("10\n\n22\n"), Out: &out, ErrOut: &out})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer a.Close()
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	events, err := a.Store.QueryAudit(context.Background(), storage.AuditQuery{})
	if err != nil {
		t.Fatalf("query audit: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(events))
	}
	ev := events[0]
	if ev.Key != "10" || ev.Label != "Flush DNS Cache" || ev.Command != "ipconfig /flushdns" {
		t.Fatalf("unexpected event: %#v", ev)
	}
	if !strings.Contains(out.String(), ">> Running: ipconfig /flushdns") {
		t.Fatalf("command not announced:\n%s", out.String())
	}
}
