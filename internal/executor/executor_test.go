package executor

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	var out bytes.Buffer
	s := NewShell("", nil)
	s.Stdin = strings.NewReader("")
	s.Stdout = &out
	s.Stderr = &out
	return s, &out
}

func TestExecuteStreamsOutput(t *testing.T) {
	s, out := newTestShell(t)
	res, err := s.Execute(context.Background(), "echo streamed")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if res.ExitCode != 0 || res.Command != "echo streamed" {
		t.Fatalf("unexpected result: %#v", res)
	}
	if strings.TrimSpace(out.String()) != "streamed" {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if len(res.Output) != 0 {
		t.Fatalf("streamed run should not capture output")
	}
}

func TestExecuteNonZeroIsNotError(t *testing.T) {
	s, _ := newTestShell(t)
	res, err := s.Execute(context.Background(), "exit 3")
	if err != nil {
		t.Fatalf("non-zero exit must not be an error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", res.ExitCode)
	}
}

func TestCaptureBuffersStdout(t *testing.T) {
	s, out := newTestShell(t)
	res, err := s.Capture(context.Background(), "echo captured")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if strings.TrimSpace(string(res.Output)) != "captured" {
		t.Fatalf("unexpected captured output: %q", res.Output)
	}
	if out.Len() != 0 {
		t.Fatalf("captured stdout leaked to console: %q", out.String())
	}
}

func TestLaunchFailure(t *testing.T) {
	s, _ := newTestShell(t)
	s.Program = "/nonexistent/shell-for-test"
	res, err := s.Execute(context.Background(), "echo never")
	if !errors.Is(err, ErrLaunch) {
		t.Fatalf("expected ErrLaunch, got %v", err)
	}
	var launchErr *LaunchError
	if !errors.As(err, &launchErr) || launchErr.Command != "echo never" {
		t.Fatalf("expected LaunchError with command, got %#v", err)
	}
	if res.ExitCode != -1 {
		t.Fatalf("expected exit code -1 on launch failure, got %d", res.ExitCode)
	}
}

func TestDefaultShell(t *testing.T) {
	if p, args := DefaultShell("windows"); p != "cmd" || len(args) != 1 || args[0] != "/C" {
		t.Fatalf("unexpected windows shell: %s %v", p, args)
	}
	if p, args := DefaultShell("linux"); p != "/bin/sh" || len(args) != 1 || args[0] != "-c" {
		t.Fatalf("unexpected unix shell: %s %v", p, args)
	}
}
