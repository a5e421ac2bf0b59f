// Package audit записывает выполненные команды через storage.AuditWriter.
package audit

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"itsupport/internal/core"
	"itsupport/internal/executor"
	"itsupport/internal/storage"
)

const (
	statusOK           = "ok"
	statusFailed       = "failed"
	statusLaunchFailed = "launch_failed"
	statusError        = "error"
)

// Executor оборачивает executor.Executor и пишет аудит каждого запуска.
type Executor struct {
	Next   executor.Executor
	Sink   storage.AuditWriter
	Logger *slog.Logger
	Now    func() time.Time
}

// Execute выполняет команду и записывает результат.
func (e *Executor) Execute(ctx context.Context, line string) (executor.Result, error) {
	res, err := e.Next.Execute(ctx, line)
	e.record(ctx, line, res, err)
	return res, err
}

// Capture выполняет команду с буферизацией и записывает результат.
func (e *Executor) Capture(ctx context.Context, line string) (executor.Result, error) {
	res, err := e.Next.Capture(ctx, line)
	e.record(ctx, line, res, err)
	return res, err
}

func (e *Executor) record(ctx context.Context, line string, res executor.Result, execErr error) {
	if e.Sink == nil {
		return
	}
	ev := storage.AuditEvent{
		Command:   line,
		ExitCode:  res.ExitCode,
		Status:    status(res, execErr),
		RequestID: newRequestID(),
	}
	if e.Now != nil {
		ev.TS = e.Now().UTC()
	}
	if entry, ok := core.EntryFromContext(ctx); ok {
		ev.Key = entry.Key
		ev.Label = entry.Label
	}
	// аудит не должен ломать действие оператора
	if err := e.Sink.Write(context.WithoutCancel(ctx), ev); err != nil && e.Logger != nil {
		e.Logger.Warn("audit write failed", "command", line, "err", err)
	}
}

func status(res executor.Result, err error) string {
	switch {
	case errors.Is(err, executor.ErrLaunch):
		return statusLaunchFailed
	case err != nil:
		return statusError
	case res.ExitCode != 0:
		return statusFailed
	default:
		return statusOK
	}
}

func newRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("req-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
