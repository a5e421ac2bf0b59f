package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := New("1.2.3")
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestRootRunsMenuUntilExit(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	out, err := execute(t, "42\n22\n")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if !strings.Contains(out, "Invalid option. Try again.") || !strings.Contains(out, "Exiting...") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRootRejectsArguments(t *testing.T) {
	if _, err := execute(t, "", "chkdsk"); err == nil {
		t.Fatalf("expected error for unknown argument")
	}
}

func TestRootConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := execute(t, "22\n", "--config", path); err == nil {
		t.Fatalf("expected config error")
	}
}

func TestHistoryRequiresAudit(t *testing.T) {
	_, err := execute(t, "", "history")
	if !errors.Is(err, errAuditDisabled) {
		t.Fatalf("expected errAuditDisabled, got %v", err)
	}
}

func TestHistoryListsEvents(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "itsupport.yaml")
	body := "menu:\n  invalid_pause_ms: 0\naudit:\n  enabled: true\n  sqlite_path: " + filepath.ToSlash(filepath.Join(dir, "audit.db")) + "\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// empty custom command runs nothing; exit
	if _, err := execute(t, "19\n\n22\n", "--config", cfgPath); err != nil {
		t.Fatalf("menu: %v", err)
	}
	out, err := execute(t, "", "history", "--config", cfgPath, "--limit", "5")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Fatalf("expected empty history, got %s", out)
	}
}
