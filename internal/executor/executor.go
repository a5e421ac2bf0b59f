// Package executor запускает командные строки через оболочку платформы.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// ErrLaunch отмечает команды, которые не удалось запустить.
var ErrLaunch = errors.New("command could not be launched")

// Result описывает итог выполнения команды.
type Result struct {
	Command  string
	ExitCode int
	Output   []byte
}

// Executor запускает командную строку.
type Executor interface {
	// Execute выводит результат оператору по мере выполнения.
	Execute(ctx context.Context, line string) (Result, error)
	// Capture собирает stdout в Result.Output.
	Capture(ctx context.Context, line string) (Result, error)
}

// LaunchError оборачивает ошибку запуска.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %q: %v", e.Command, e.Err)
}

// Unwrap позволяет errors.Is(err, ErrLaunch) и доступ к причине.
func (e *LaunchError) Unwrap() []error {
	return []error{ErrLaunch, e.Err}
}

// Shell запускает команды через cmd /C или /bin/sh -c.
type Shell struct {
	Program string
	Args    []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewShell создает Shell; пустой program означает shell платформы.
func NewShell(program string, args []string) *Shell {
	if program == "" {
		program, args = DefaultShell(runtime.GOOS)
	}
	return &Shell{
		Program: program,
		Args:    args,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// DefaultShell возвращает shell для goos.
func DefaultShell(goos string) (string, []string) {
	if goos == "windows" {
		return "cmd", []string{"/C"}
	}
	return "/bin/sh", []string{"-c"}
}

// Execute выполняет line с выводом в консоль оператора.
func (s *Shell) Execute(ctx context.Context, line string) (Result, error) {
	return s.run(ctx, line, s.Stdout)
}

// Capture выполняет line и возвращает stdout в Result.Output.
func (s *Shell) Capture(ctx context.Context, line string) (Result, error) {
	var buf bytes.Buffer
	res, err := s.run(ctx, line, &buf)
	res.Output = buf.Bytes()
	return res, err
}

func (s *Shell) run(ctx context.Context, line string, stdout io.Writer) (Result, error) {
	res := Result{Command: line, ExitCode: -1}
	args := append(append([]string{}, s.Args...), line)
	cmd := exec.CommandContext(ctx, s.Program, args...) // #nosec G204 -- команды задает оператор или каталог.
	cmd.Stdin = s.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = s.Stderr
	prepare(cmd, s.Program, s.Args, line)

	if err := cmd.Start(); err != nil {
		return res, &LaunchError{Command: line, Err: err}
	}
	err := cmd.Wait()
	if err == nil {
		res.ExitCode = 0
		return res, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, fmt.Errorf("wait %q: %w", line, err)
}
